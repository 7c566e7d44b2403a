// Package trace records structured events for pathfinder runs.
//
// A run is split into spans: the driver span wraps one CLI command, pass
// spans wrap the walk and render phases, dir spans wrap the listing of a
// single directory and entry events mark individual nodes. Slow walks on
// network mounts are the main reason to turn this on.
//
//	pathfinder --trace=- --trace-level=detail ./src
//
// # Tracers
//
//   - Nop: disabled tracing, no allocation per event
//   - StreamTracer: writes each event as text or NDJSON
//   - RingTracer: keeps the last N events in memory for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//	off < error < phase < detail < debug
//
// phase emits driver and pass events, detail adds directory spans and
// debug adds per-entry events.
//
// Tracers travel through the call chain in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "walk", 0)
//	defer span.End("")
package trace
