// Scale Comparison animates a shared logarithmic scale across a list
// of named time magnitudes, from sub-atomic lifetimes to cosmological
// ages, revealing each one in turn.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/darajkong/scale-comparison/internal/config"
	"github.com/darajkong/scale-comparison/internal/game"
	"github.com/darajkong/scale-comparison/internal/store"
	"github.com/darajkong/scale-comparison/internal/thing"
)

func main() {
	configPath := flag.String("config", "", "path to the settings file (YAML)")
	dataPath := flag.String("data", "", "path to the item list (JSON)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("[!] settings: %v (using defaults)", err)
	}

	path := *dataPath
	if path == "" {
		path = cfg.DataFile
	}
	if path == "" {
		if path, err = store.DefaultPath(); err != nil {
			log.Fatalf("resolve data path: %v", err)
		}
	}

	things, err := store.Load(path)
	if err != nil {
		log.Printf("[!] item list %s: %v (using built-in defaults)", path, err)
		things = thing.Defaults()
		if err := store.Save(path, things); err != nil {
			log.Printf("[!] save defaults: %v", err)
		}
	}

	app, err := game.New(cfg, things, path)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Scale Comparison")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
