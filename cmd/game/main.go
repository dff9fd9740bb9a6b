package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kpmorrow/tictactoe/internal/config"
	"github.com/kpmorrow/tictactoe/internal/game"
	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/events"
	"github.com/kpmorrow/tictactoe/internal/game/events/subscribers"
	"github.com/kpmorrow/tictactoe/internal/game/seat"
	"github.com/kpmorrow/tictactoe/internal/game/states"
	"github.com/kpmorrow/tictactoe/internal/game/strategy"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	games := flag.Int("games", 0, "number of games to play (overrides config)")
	seatX := flag.String("seat-x", "", "strategy for the X seat (overrides config)")
	seatO := flag.String("seat-o", "", "strategy for the O seat (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed, 0 for clock-seeded (overrides config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *games > 0 {
		config.Set("demo.games", *games)
	}
	if *seatX != "" {
		config.Set("match.seat_x", *seatX)
	}
	if *seatO != "" {
		config.Set("match.seat_o", *seatO)
	}
	if *seed != 0 {
		config.Set("match.seed", *seed)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging)

	rngSeed := cfg.Match.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	log.Info().
		Int64("seed", rngSeed).
		Str("seat_x", cfg.Match.SeatX).
		Str("seat_o", cfg.Match.SeatO).
		Int("games", cfg.Demo.Games).
		Msg("Starting demo run")

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("match-logger", log.Logger, zerolog.DebugLevel))
	if cfg.Demo.ShowBoards {
		bus.Subscribe(subscribers.NewDisplaySubscriber("console-display", os.Stdout))
	}

	wins := map[core.Mark]int{}
	draws := 0

	for i := 0; i < cfg.Demo.Games; i++ {
		// Fresh strategies per game so the weighted queue never leaks
		// state across matches.
		stratX, err := strategy.New(cfg.Match.SeatX, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("Bad X strategy")
		}
		stratO, err := strategy.New(cfg.Match.SeatO, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("Bad O strategy")
		}

		seats := [2]*seat.Seat{
			seat.NewStrategySeat(core.MarkX, stratX),
			seat.NewStrategySeat(core.MarkO, stratO),
		}
		if cfg.Demo.AlternateFirst && i%2 == 1 {
			seats[0], seats[1] = seats[1], seats[0]
		}

		m, err := game.NewMatch(game.Config{
			Seats:    seats,
			EventBus: bus,
			Logger:   log.Logger,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Match setup failed")
		}

		phase, err := m.Run(context.Background())
		if err != nil {
			log.Fatal().Err(err).Str("match_id", m.ID()).Msg("Match aborted")
		}

		switch phase {
		case states.PhaseWon:
			wins[m.Winner()]++
			fmt.Printf("Game %d: %s wins in %d moves\n", i+1, m.Winner(), m.MoveCount())
		case states.PhaseDrawn:
			draws++
			fmt.Printf("Game %d: draw\n", i+1)
		}
	}

	fmt.Printf("\nResults over %d games (X=%s, O=%s):\n", cfg.Demo.Games, cfg.Match.SeatX, cfg.Match.SeatO)
	fmt.Printf("  X wins: %d\n", wins[core.MarkX])
	fmt.Printf("  O wins: %d\n", wins[core.MarkO])
	fmt.Printf("  Draws:  %d\n", draws)
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
