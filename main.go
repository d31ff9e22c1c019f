package main

import (
	"flag"
	"log"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Tuning file (.yaml, .yml or .toml), applied over saved tuning")
	levelPath := flag.String("level", "", "TMX level (empty = bundled proving ground)")
	flag.Parse()

	// Initialize persistence and load saved tuning
	if err := viewer.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	// Saved tuning that fails validation is skipped, not fatal.
	if ok, err := viewer.LoadTuning(); err == nil && ok {
		log.Println("Loaded saved tuning")
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	game, err := viewer.NewGame(*levelPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("thirdperson locomotion")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
