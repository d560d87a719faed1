package observability

import "log/slog"

// defaultShutdownTimeoutSec bounds how long Shutdown waits to flush
// pending telemetry when Config.ShutdownTimeoutSec is unset.
const defaultShutdownTimeoutSec = 5

// AppMode names which host surface is running, recorded as a resource
// attribute and a log field so traces/logs from the CLI, the metrics
// server, and the MCP server are distinguishable in a shared backend.
type AppMode string

// Known application modes.
const (
	ModeCLI    AppMode = "cli"
	ModeServer AppMode = "server"
	ModeMCP    AppMode = "mcp"
)

// Config configures Init. A zero-value Config is invalid for OTLPEndpoint
// handling purposes but still usable: with OTLPEndpoint empty, Init wires
// no-op tracer/meter providers and a plain stderr logger, so the library
// never requires a collector to run.
type Config struct {
	// ServiceName identifies this process in traces/metrics/logs.
	ServiceName string

	// ServiceVersion is reported as a resource attribute when non-empty.
	ServiceVersion string

	// Environment (e.g. "production", "staging") is reported as a resource
	// attribute when non-empty.
	Environment string

	// Mode records which host surface (CLI, metrics server, MCP server) is
	// running.
	Mode AppMode

	// LogLevel is the minimum slog level emitted.
	LogLevel slog.Level

	// LogJSON selects JSON log output; otherwise logs are emitted as text.
	LogJSON bool

	// OTLPEndpoint is the OTLP/gRPC collector address. Empty disables
	// export entirely (no-op providers).
	OTLPEndpoint string

	// OTLPInsecure disables transport security for the OTLP connection.
	OTLPInsecure bool

	// OTLPHeaders are extra gRPC metadata headers sent with every export.
	OTLPHeaders map[string]string

	// SampleRatio is the trace sampling ratio in [0,1] used when no
	// OTEL_TRACES_SAMPLER env var is set. Zero falls back to always-sample.
	SampleRatio float64

	// DebugTrace forces always-sample and logs attribute keys removed by
	// the attribute filter at warn level; the filter stays active unless
	// TraceVerbose is set.
	DebugTrace bool

	// TraceVerbose disables the attribute filter entirely, emitting every
	// span attribute even when exporting to a real collector.
	TraceVerbose bool

	// ShutdownTimeoutSec bounds how long Shutdown waits to flush pending
	// telemetry. Zero uses defaultShutdownTimeoutSec.
	ShutdownTimeoutSec int
}

// DefaultConfig returns the configuration used when a caller doesn't
// override anything: CLI mode, info-level text logging to stderr, no OTLP
// export (fully no-op telemetry).
func DefaultConfig() Config {
	return Config{
		ServiceName:        "projectdetect",
		Mode:               ModeCLI,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
