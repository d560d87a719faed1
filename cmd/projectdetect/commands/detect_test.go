package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/projectdetect/cmd/projectdetect/commands"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

func writeTempProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "go.mod"),
		[]byte("module example.com/proj\n\ngo 1.24\n"),
		0o644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "main.go"),
		[]byte("package main\n\nfunc main() {}\n"),
		0o644,
	))

	return dir
}

func TestDetectCommand_Exists(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDetectCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "detect <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestDetectCommand_UnknownFormat_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := writeTempProject(t)

	cmd := commands.NewDetectCommand()
	cmd.SetArgs([]string{dir, "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUnknownFormat)
}

func TestDetectCommand_JSONFormat_PrintsProjectProfile(t *testing.T) {
	t.Parallel()

	dir := writeTempProject(t)

	var out bytes.Buffer

	cmd := commands.NewDetectCommand()
	cmd.SetArgs([]string{dir, "--format", "json", "--no-git"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	var profile model.ProjectProfile
	require.NoError(t, json.Unmarshal(out.Bytes(), &profile))

	require.NotNil(t, profile.PrimaryLanguage())
	assert.Equal(t, model.LanguageGo, profile.PrimaryLanguage().Language.Kind)
	assert.Nil(t, profile.Git)
}

func TestDetectCommand_TextFormat_PrintsSummary(t *testing.T) {
	t.Parallel()

	dir := writeTempProject(t)

	var out bytes.Buffer

	cmd := commands.NewDetectCommand()
	cmd.SetArgs([]string{dir, "--no-git"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Primary language")
}

func TestDetectCommand_MaxDepthFlag_LimitsRecursion(t *testing.T) {
	t.Parallel()

	dir := writeTempProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "nested", "deep", "other.go"),
		[]byte("package deep\n"),
		0o644,
	))

	var out bytes.Buffer

	cmd := commands.NewDetectCommand()
	cmd.SetArgs([]string{dir, "--format", "json", "--max-depth", "1", "--no-git"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	var profile model.ProjectProfile
	require.NoError(t, json.Unmarshal(out.Bytes(), &profile))
	assert.Equal(t, 1, profile.Structure.FileTypes["go"])
}
