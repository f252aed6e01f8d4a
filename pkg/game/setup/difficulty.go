package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/rng"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/dungeon"
)

// Curve shapes the per-region difficulty ramp
type Curve struct {
	// Dropoff is how much of the previous region's difficulty carries into
	// the next one: 0 resets fully, 1 not at all.
	Dropoff float64

	// Noise is the half-width of the uniform jitter added to every room.
	Noise float64

	// StartingPoints is the floor every difficulty is rescaled onto.
	StartingPoints float64
}

// DefaultCurve returns the stock curve
func DefaultCurve() Curve {
	return Curve{
		Dropoff:        0.5,
		Noise:          0.05,
		StartingPoints: 0.1,
	}
}

// Validate rejects curves that would leave [0,1]
func (c Curve) Validate() error {
	switch {
	case c.Dropoff < 0 || c.Dropoff > 1:
		return &catalog.ConfigurationError{Field: "dropoff", Reason: fmt.Sprintf("%g is outside [0,1]", c.Dropoff)}
	case c.StartingPoints < 0 || c.StartingPoints > 1:
		return &catalog.ConfigurationError{Field: "starting points", Reason: fmt.Sprintf("%g is outside [0,1]", c.StartingPoints)}
	case c.Noise < 0:
		return &catalog.ConfigurationError{Field: "noise", Reason: "must not be negative"}
	}
	return nil
}

// DifficultyLayer assigns every room a difficulty budget. Regions must be
// assigned first.
type DifficultyLayer struct {
	Curve Curve
}

// Name returns the name of this layer
func (l *DifficultyLayer) Name() string {
	return "Difficulty"
}

// Validate checks the curve parameters
func (l *DifficultyLayer) Validate() error {
	return l.Curve.Validate()
}

// Apply assigns difficulties along the curve
func (l *DifficultyLayer) Apply(d *dungeon.Dungeon, src rng.Source) error {
	if err := AssignDifficulties(d, l.Curve, src); err != nil {
		return err
	}
	logDone(l.Name(), d, logrus.Fields{"regions": d.RegionCount()})
	return nil
}

// regionStarts returns the index of the first room of each region,
// followed by the index of the last room as the end of the final region.
func regionStarts(d *dungeon.Dungeon) ([]int, error) {
	n := len(d.Rooms)
	count := d.RegionCount()
	starts := make([]int, count+1)
	for i := range starts {
		starts[i] = n
	}
	for _, r := range d.Rooms {
		if r.Region == dungeon.Unresolved {
			return nil, fmt.Errorf("%w: room %d", ErrUnresolvedRegion, r.Index)
		}
		if r.Index < starts[r.Region] {
			starts[r.Region] = r.Index
		}
	}
	starts[count] = n - 1

	// A region without rooms borrows the start of the one after it
	for i := count - 1; i >= 0; i-- {
		if starts[i] > starts[i+1] {
			starts[i] = starts[i+1]
		}
	}
	return starts, nil
}

// AssignDifficulties maps each room's creation index onto a quadratic ramp
// that restarts at every region. Within a region running from x1 to x2 the
// raw value is t²·(x2 − dropoff·x1) + dropoff·x1, normalised by the last
// index, rescaled onto [StartingPoints, 1], jittered and clamped.
func AssignDifficulties(d *dungeon.Dungeon, curve Curve, src rng.Source) error {
	if err := curve.Validate(); err != nil {
		return err
	}
	if len(d.Rooms) == 0 {
		return nil
	}

	starts, err := regionStarts(d)
	if err != nil {
		return err
	}
	last := float64(len(d.Rooms) - 1)

	for _, r := range d.Rooms {
		value := curve.StartingPoints
		if last > 0 {
			x1 := float64(starts[r.Region])
			x2 := float64(starts[r.Region+1])

			t := 1.0
			if x2 > x1 {
				t = clamp((float64(r.Index)-x1)/(x2-x1), 0, 1)
			}
			raw := t*t*(x2-curve.Dropoff*x1) + curve.Dropoff*x1
			value = raw/last*(1-curve.StartingPoints) + curve.StartingPoints
		}

		jitter := (src.Float64()*2 - 1) * curve.Noise
		r.Difficulty = clamp(value+jitter, 0, 1)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
