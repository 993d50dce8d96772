// Package propagate implements the propagation engine: source sampling
// already delegated to pkg/source, nearest-intersection search, dispatch
// to the element library, the beam-splitting work stack, termination,
// and path accumulation. It is the sole entry point into the engine,
// grounded on the teacher's pkg/renderer as the top-level orchestration
// layer (Raytracer.Render driving per-pixel work the way TraceRays
// drives per-ray work).
package propagate

// TraceConfig holds the tunables of one trace_rays call.
type TraceConfig struct {
	MaxEvents      uint32
	EpsilonAdvance float64
	MinIntensity   float64
}

// DefaultTraceConfig returns the specification's defaults:
// max_events=80, epsilon_advance=1e-3, min_intensity=0.02.
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxEvents:      80,
		EpsilonAdvance: 1e-3,
		MinIntensity:   0.02,
	}
}
