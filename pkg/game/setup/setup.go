// Package setup provides the passes that run over a laid-out dungeon:
// region partitioning, the difficulty curve and room/enemy content.
package setup

import (
	"errors"

	"github.com/sirupsen/logrus"

	"dungen/pkg/game/dungeon"
	"dungen/pkg/logger"
)

// ErrExhaustedCandidates is returned by a weighted draw with no eligible candidate
var ErrExhaustedCandidates = errors.New("no eligible candidates")

// ErrUnresolvedRegion is returned when some room cannot be reached from the
// entrance, which only happens for a disconnected graph.
var ErrUnresolvedRegion = errors.New("room region unresolved")

// logDone records a finished pass at debug level
func logDone(layer string, d *dungeon.Dungeon, fields logrus.Fields) {
	entry := logger.Log.WithFields(logrus.Fields{
		"layer": layer,
		"rooms": len(d.Rooms),
	})
	entry.WithFields(fields).Debug("layer complete")
}
