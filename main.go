package main

import (
	"flag"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/rng"
	"dungen/pkg/engine/terminal"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/config"
	"dungen/pkg/game/devtools"
	"dungen/pkg/game/floor"
	"dungen/pkg/game/pipeline"
	"dungen/pkg/game/renderer"
	"dungen/pkg/game/renderer/tui"
	"dungen/pkg/logger"
)

func init() {
	logger.Init()
}

func initGotext(localesDir, lang string) {
	if localesDir == "" {
		return
	}
	gotext.Configure(localesDir, lang, "default")
}

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 uses DUNGEN_SEED or the clock)")
	level := flag.Int("level", 0, "floor number (0 uses DUNGEN_FLOOR, default 1)")
	envFile := flag.String("env", ".env", "optional .env file with DUNGEN_* settings")
	dumpPath := flag.String("dump", "", "also write a debug dump to this file")
	saveHTML := flag.Bool("html", false, "also save an HTML snapshot of the map")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	quiet := flag.Bool("quiet", false, "do not print the map to stdout")
	localesDir := flag.String("locales", "", "directory with gettext translations")
	lang := flag.String("lang", "en_GB", "translation language")
	flag.Parse()

	initGotext(*localesDir, *lang)

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Log.Fatal("Invalid configuration: ", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *level > 0 {
		cfg.Floor = *level
	}
	if cfg.Seed == 0 {
		cfg.Seed = rng.RandomSeed()
	}
	cfg = floor.Tune(cfg, cfg.Floor)

	fl := floor.ForLevel(cfg.Floor)
	logger.Log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"floor": cfg.Floor,
		"theme": fl.Name(),
	}).Info("Generating dungeon")

	p, err := pipeline.Default(cfg, catalog.Default())
	if err != nil {
		logger.Log.Fatal("Invalid configuration: ", err)
	}

	d, err := p.Generate(cfg.Seed)
	if err != nil {
		logger.Log.Fatal("Generation failed: ", err)
	}

	meta := renderer.Meta{Seed: cfg.Seed, Floor: cfg.Floor, Title: fl.Name()}

	if !*quiet {
		r := tui.New()
		r.NoColor = *noColor || !terminal.IsTerminal()
		if err := r.Render(os.Stdout, d, meta); err != nil {
			logger.Log.Fatal("Render failed: ", err)
		}
	}

	if *dumpPath != "" {
		path, err := devtools.DumpToFile(*dumpPath, d, meta)
		if err != nil {
			logger.Log.Fatal("Dump failed: ", err)
		}
		logger.Log.WithField("path", path).Info("Wrote dump")
	}

	if *saveHTML {
		path, err := devtools.SaveHTML(d, meta)
		if err != nil {
			logger.Log.Fatal("Snapshot failed: ", err)
		}
		logger.Log.WithField("path", path).Info("Wrote HTML snapshot")
	}
}
