package main

import (
	"flag"
	"log"

	"lowpoly_terrain/terrain_generation/config"
	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML terrain config (defaults when empty)")
	seed := flag.Int64("seed", 0, "sample seed (random when 0)")
	flag.Parse()

	cfg := lowpoly.DefaultTerrainConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadTerrainConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = seed
	}

	game, err := viewer.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Low-poly terrain")
	ebiten.SetWindowSize(config.WindowW, config.WindowH)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
