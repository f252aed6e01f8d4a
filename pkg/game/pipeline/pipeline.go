// Package pipeline runs the generation layers, in order, over one shared
// dungeon and a single seeded random source.
package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/rng"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/config"
	"dungen/pkg/game/dungeon"
	"dungen/pkg/game/generator"
	"dungen/pkg/game/setup"
	"dungen/pkg/logger"
)

// Layer is one generation pass. Each layer sees the output of every layer
// before it.
type Layer interface {
	Name() string
	Apply(d *dungeon.Dungeon, src rng.Source) error
}

// validator is implemented by layers whose parameters can be checked
// before any generation starts
type validator interface {
	Validate() error
}

// Pipeline is an ordered list of layers
type Pipeline struct {
	layers []Layer
}

// New creates a pipeline running layers in the given order
func New(layers ...Layer) *Pipeline {
	return &Pipeline{layers: layers}
}

// Default builds the standard pipeline: layout, regions, difficulty and
// content. Configuration problems are reported here, before any attempt.
func Default(cfg config.Config, cat *catalog.Catalog) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, &catalog.ConfigurationError{Field: "catalog", Reason: "no catalog configured"}
	}

	return New(
		generator.NewBranchingPathLayer(cfg.PathConfig()),
		setup.RegionLayer{},
		&setup.DifficultyLayer{Curve: cfg.Curve()},
		&setup.ContentLayer{Catalog: cat, PopulateExit: cfg.PopulateExit},
	), nil
}

// Layers returns the layers in execution order
func (p *Pipeline) Layers() []Layer {
	return p.layers
}

// Validate checks every layer that can be checked
func (p *Pipeline) Validate() error {
	if len(p.layers) == 0 {
		return &catalog.ConfigurationError{Field: "layers", Reason: "pipeline has no layers"}
	}
	for _, l := range p.layers {
		if v, ok := l.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("%s: %w", l.Name(), err)
			}
		}
	}
	return nil
}

// Generate builds a dungeon from seed. The same seed and layers always
// produce the same dungeon.
func (p *Pipeline) Generate(seed int64) (*dungeon.Dungeon, error) {
	return p.GenerateFrom(rng.New(seed), logrus.Fields{"seed": seed})
}

// GenerateFrom builds a dungeon drawing from src. fields are added to the
// log entries of this run.
func (p *Pipeline) GenerateFrom(src rng.Source, fields logrus.Fields) (*dungeon.Dungeon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log := logger.Log.WithFields(fields)
	d := dungeon.New()

	for _, l := range p.layers {
		if err := l.Apply(d, src); err != nil {
			log.WithField("layer", l.Name()).WithError(err).Error("layer failed")
			return nil, fmt.Errorf("%s: %w", l.Name(), err)
		}
	}

	if err := dungeon.Validate(d); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rooms":   len(d.Rooms),
		"keys":    len(d.Keys),
		"regions": d.RegionCount(),
	}).Info("dungeon generated")
	return d, nil
}
