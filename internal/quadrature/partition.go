package quadrature

import (
	"fmt"

	"github.com/specialistvlad/gridquad/internal/config"
)

// Partition splits d into exactly threads horizontal strips of equal height.
// Each strip gets r.YSteps/threads local y-steps and the last one also takes
// the remainder, so the local counts always add up to r.YSteps. The last
// strip's upper bound is d.Y1 itself rather than an accumulated sum.
func Partition(d Domain, r Resolution, threads int) ([]Region, error) {
	if threads < 1 {
		return nil, fmt.Errorf("%w: thread count must be at least 1, got %d", config.ErrInvalidConfig, threads)
	}
	if r.XSteps < 1 || r.YSteps < 1 {
		return nil, fmt.Errorf("%w: step counts must be positive, got %dx%d", config.ErrInvalidConfig, r.XSteps, r.YSteps)
	}
	if r.YSteps < threads {
		return nil, fmt.Errorf("%w: ysteps (%d) must be at least the thread count (%d)", config.ErrInvalidConfig, r.YSteps, threads)
	}
	if !(d.X1 > d.X0) || !(d.Y1 > d.Y0) {
		return nil, fmt.Errorf("%w: malformed domain [%g, %g] x [%g, %g]", config.ErrInvalidConfig, d.X0, d.X1, d.Y0, d.Y1)
	}

	deltaY := (d.Y1 - d.Y0) / float64(threads)
	perStrip := r.YSteps / threads

	regions := make([]Region, threads)
	for k := range regions {
		regions[k] = Region{
			X0:     d.X0,
			X1:     d.X1,
			Y0:     d.Y0 + float64(k)*deltaY,
			Y1:     d.Y0 + float64(k+1)*deltaY,
			XSteps: r.XSteps,
			YSteps: perStrip,
		}
	}
	last := &regions[threads-1]
	last.Y1 = d.Y1
	last.YSteps += r.YSteps % threads

	return regions, nil
}
