package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/namsral/flag"
	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/cli"
	"github.com/jfm56/Cluedo-Game/internal/config"
)

func main() {
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "", "Path to a card universe JSON file (built-in classic set when empty)")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	gameConfig := config.Default()
	if *configPath != "" {
		gameConfig, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ui := cli.NewCLI(log)
	if err := ui.Run(flag.Args(), gameConfig, rng); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
