package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kpmorrow/tictactoe/internal/config"
	"github.com/kpmorrow/tictactoe/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	mark := flag.String("mark", "", "mark to play as, X or O (overrides config)")
	opponent := flag.String("opponent", "", "opponent strategy (overrides config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *mark != "" {
		config.Set("ui.human_mark", *mark)
	}
	if *opponent != "" {
		config.Set("ui.ai_strategy", *opponent)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Pick up UI tuning edits without a restart
	config.WatchConfig(func() {
		log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
	})

	uiGame, err := ui.NewUIGame(log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI game")
	}

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI loop ended")
	}
}
