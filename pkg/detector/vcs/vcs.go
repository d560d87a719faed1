// Package vcs implements the VCS Probe: local-only Git repository
// inspection, grounded on the teacher's pkg/gitlib repository wrapper but
// narrowed to the handful of fields spec.md's GitRepository needs.
package vcs

import (
	"errors"
	"fmt"
	"time"

	git2go "github.com/libgit2/git2go/v34"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// defaultRemoteName is the remote whose URL is reported when present.
const defaultRemoteName = "origin"

// maxContributorCommits bounds the history walk used to collect
// contributors; spec.md §4.6 allows returning an empty list when a full walk
// isn't affordable, so this is a soft cap rather than a correctness
// requirement.
const maxContributorCommits = 5000

// Probe reads local repository state at root. It never contacts a network.
// Returns nil, nil when root has no .git directory.
func Probe(root string, collectContributors bool) (*model.GitRepository, error) {
	repo, err := git2go.OpenRepository(root)
	if err != nil {
		var gitErr *git2go.GitError
		if errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeNotFound {
			return nil, nil
		}

		return nil, fmt.Errorf("open repository: %w", err)
	}
	defer repo.Free()

	result := &model.GitRepository{}

	result.CurrentBranch, err = currentBranch(repo)
	if err != nil {
		return nil, fmt.Errorf("read current branch: %w", err)
	}

	result.RemoteURL = remoteURL(repo)

	result.HasUncommittedChanges, err = hasUncommittedChanges(repo)
	if err != nil {
		return nil, fmt.Errorf("read working tree status: %w", err)
	}

	lastCommitAt, err := lastCommitTime(repo)
	if err != nil {
		return nil, fmt.Errorf("read last commit: %w", err)
	}

	result.LastCommitAt = lastCommitAt

	if collectContributors {
		result.Contributors, err = contributors(repo)
		if err != nil {
			return nil, fmt.Errorf("read contributors: %w", err)
		}
	}

	// commits_ahead/commits_behind are only computable against a local
	// tracked upstream (spec.md §4.6); resolving the tracking branch is an
	// extra round trip this probe does not take, so they stay at their zero
	// value as documented.

	return result, nil
}

func currentBranch(repo *git2go.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		var gitErr *git2go.GitError
		if errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeUnbornBranch {
			return "", nil
		}

		return "", fmt.Errorf("read HEAD: %w", err)
	}
	defer head.Free()

	if head.IsBranch() {
		return head.Branch().Name()
	}

	return "HEAD", nil
}

func remoteURL(repo *git2go.Repository) string {
	remote, err := repo.Remotes.Lookup(defaultRemoteName)
	if err != nil {
		return ""
	}
	defer remote.Free()

	return remote.Url()
}

func hasUncommittedChanges(repo *git2go.Repository) (bool, error) {
	opts := &git2go.StatusOptions{
		Show:  git2go.StatusShowIndexAndWorkdir,
		Flags: git2go.StatusOptIncludeUntracked,
	}

	list, err := repo.StatusList(opts)
	if err != nil {
		return false, fmt.Errorf("build status list: %w", err)
	}
	defer list.Free()

	count, err := list.EntryCount()
	if err != nil {
		return false, fmt.Errorf("count status entries: %w", err)
	}

	return count > 0, nil
}

func lastCommitTime(repo *git2go.Repository) (time.Time, error) {
	head, err := repo.Head()
	if err != nil {
		var gitErr *git2go.GitError
		if errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeUnbornBranch {
			return time.Time{}, nil
		}

		return time.Time{}, fmt.Errorf("read HEAD: %w", err)
	}
	defer head.Free()

	commit, err := repo.LookupCommit(head.Target())
	if err != nil {
		return time.Time{}, fmt.Errorf("lookup HEAD commit: %w", err)
	}
	defer commit.Free()

	return commit.Author().When, nil
}

func contributors(repo *git2go.Repository) ([]string, error) {
	walk, err := repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}
	defer walk.Free()

	if err := walk.PushHead(); err != nil {
		var gitErr *git2go.GitError
		if errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeUnbornBranch {
			return nil, nil
		}

		return nil, fmt.Errorf("push HEAD: %w", err)
	}

	seen := make(map[string]struct{})

	var names []string

	visited := 0

	walkErr := walk.Iterate(func(commit *git2go.Commit) bool {
		if visited >= maxContributorCommits {
			return false
		}

		visited++

		author := commit.Author()
		if author == nil {
			return true
		}

		if _, ok := seen[author.Name]; !ok {
			seen[author.Name] = struct{}{}
			names = append(names, author.Name)
		}

		return true
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk commits: %w", walkErr)
	}

	return names, nil
}
