package propagate

import (
	"runtime"
	"sync"

	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// TraceRays is the engine's sole entry point: it validates elements and
// sources, then traces every sampled ray to termination and returns their
// RayPaths in deterministic depth-first order, sources in input order.
func TraceRays(elements []element.OpticalElement, sources []source.Source, cfg TraceConfig) ([]core.RayPath, error) {
	if err := Validate(elements, sources); err != nil {
		return nil, err
	}

	index := newBVH(elements)
	var paths []core.RayPath
	for _, src := range sources {
		for _, initial := range src.Sample() {
			paths = append(paths, traceOne(initial, index, cfg)...)
		}
	}
	return paths, nil
}

// TraceRaysParallel fans out one goroutine per source (grounded on the
// teacher's pkg/renderer.WorkerPool), merging each source's depth-first
// output back into input order. It never changes output values or
// ordering relative to TraceRays, only wall-clock.
func TraceRaysParallel(elements []element.OpticalElement, sources []source.Source, cfg TraceConfig) ([]core.RayPath, error) {
	if err := Validate(elements, sources); err != nil {
		return nil, err
	}

	index := newBVH(elements)
	results := make([][]core.RayPath, len(sources))
	sem := make(chan struct{}, max(1, runtime.NumCPU()))
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, src source.Source) {
			defer wg.Done()
			defer func() { <-sem }()
			var out []core.RayPath
			for _, initial := range src.Sample() {
				out = append(out, traceOne(initial, index, cfg)...)
			}
			results[i] = out
		}(i, src)
	}
	wg.Wait()

	var paths []core.RayPath
	for _, r := range results {
		paths = append(paths, r...)
	}
	return paths, nil
}

// traceOne runs the depth-first work-stack loop for a single initial ray,
// returning every RayPath its splitting tree emits in traversal order.
// index is the nearest-hit search structure shared by every ray traced
// against this element set within one TraceRays/TraceRaysParallel call.
func traceOne(initial core.Ray, index *bvh, cfg TraceConfig) []core.RayPath {
	var emitted []core.RayPath
	stack := []core.Ray{initial}

	for len(stack) > 0 {
		ray := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ray.Events >= cfg.MaxEvents || ray.Intensity < cfg.MinIntensity || ray.RemainingLength <= 0 {
			emitted = append(emitted, emitPath(ray))
			continue
		}

		var el element.OpticalElement
		var hit geometry.Hit
		var found bool
		if ray.LastHit != nil {
			el, hit, found = index.nearest(ray.Position, ray.Direction, *ray.LastHit, true)
		} else {
			el, hit, found = index.nearest(ray.Position, ray.Direction, 0, false)
		}
		if found && hit.T > ray.RemainingLength {
			found = false
		}
		if !found {
			ray = ray.AppendPoint(ray.Position.Add(ray.Direction.Scale(ray.RemainingLength)))
			ray.RemainingLength = 0
			emitted = append(emitted, emitPath(ray))
			continue
		}

		ray = ray.AppendPoint(hit.Point)
		outgoing := el.Interact(ray, hit, cfg.EpsilonAdvance, cfg.MinIntensity)
		if len(outgoing) == 0 {
			emitted = append(emitted, emitPath(ray))
			continue
		}
		if el.ChangesPolarization() {
			emitted = append(emitted, emitPath(ray))
		}
		for i := len(outgoing) - 1; i >= 0; i-- {
			stack = append(stack, outgoing[i])
		}
	}
	return emitted
}

func emitPath(ray core.Ray) core.RayPath {
	alpha := core.TerminalAlpha(ray.Intensity)
	return core.RayPath{
		Points:       ray.PathPoints,
		RGBA:         [4]uint8{ray.BaseRGB[0], ray.BaseRGB[1], ray.BaseRGB[2], alpha},
		Polarization: ray.Polarization,
		WavelengthNM: ray.WavelengthNM,
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
