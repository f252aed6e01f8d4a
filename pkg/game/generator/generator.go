// Package generator lays out the room graph: a randomized walk over an
// integer grid that produces the main path, optional dead ends and side
// paths whose last room holds the key to the next locked door.
package generator

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/rng"
	"dungen/pkg/game/dungeon"
	"dungen/pkg/logger"
)

// BranchingPathLayer builds the rooms, doors, keys and path tree of a
// dungeon. It is always the first layer of a pipeline.
type BranchingPathLayer struct {
	Config PathConfig
}

// NewBranchingPathLayer creates a layer with the given parameters
func NewBranchingPathLayer(cfg PathConfig) *BranchingPathLayer {
	return &BranchingPathLayer{Config: cfg}
}

// Name returns the name of this layer
func (l *BranchingPathLayer) Name() string {
	return "Branching Path"
}

// Validate checks the layout parameters
func (l *BranchingPathLayer) Validate() error {
	return l.Config.Validate()
}

// Apply discards whatever d holds and lays out a fresh graph. A walk that
// runs into a dead end throws the whole attempt away and starts again from
// a new entrance, up to Config.MaxAttempts times.
func (l *BranchingPathLayer) Apply(d *dungeon.Dungeon, src rng.Source) error {
	if err := l.Config.Validate(); err != nil {
		return err
	}

	for attempt := 1; attempt <= l.Config.MaxAttempts; attempt++ {
		d.Reset()

		err := l.layout(d, src)
		if err == nil {
			logger.Log.WithFields(logrus.Fields{
				"layer":   l.Name(),
				"attempt": attempt,
				"rooms":   len(d.Rooms),
				"keys":    len(d.Keys),
			}).Debug("layout complete")
			return nil
		}
		if !errors.Is(err, ErrLayoutDeadEnd) {
			return err
		}

		logger.Log.WithFields(logrus.Fields{
			"layer":   l.Name(),
			"attempt": attempt,
		}).WithError(err).Debug("restarting layout")
	}

	d.Reset()
	return fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, l.Config.MaxAttempts)
}

// layout runs one attempt: an entrance at the origin and a main path walk
func (l *BranchingPathLayer) layout(d *dungeon.Dungeon, src rng.Source) error {
	entrance := d.AddRoom(originPoint, 0)
	d.MainPath = &dungeon.Path{Rooms: []int{entrance.Index}}

	length := rng.Between(src, l.Config.MainPathLength.Min, l.Config.MainPathLength.Max)

	w := walker{d: d, src: src, cfg: l.Config}
	_, err := w.createPath(d.MainPath, entrance, length-1, 0)
	return err
}
