// Package trace provides the tracing subsystem of the steel toolchain.
//
// It takes the place of a logger: every phase reports structured span and
// point events instead of free-form log lines.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	steel tokenize --trace=- --trace-level=detail src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: circular buffer, dumped to --trace when the command ends
//   - MultiTracer: combines multiple tracers
//   - Heartbeat: periodic liveness events for long directory runs
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: heartbeats only
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including directive expansions
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "tokenize-dir", trace.Parent(ctx))
//	ctx = trace.WithParent(ctx, span.ID())
//	defer span.End("")
package trace
