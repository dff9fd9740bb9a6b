package ui

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/kpmorrow/tictactoe/internal/config"
	"github.com/kpmorrow/tictactoe/internal/game"
	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/seat"
	"github.com/kpmorrow/tictactoe/internal/game/strategy"
	"github.com/kpmorrow/tictactoe/internal/ui/input"
	"github.com/kpmorrow/tictactoe/internal/ui/renderer"
)

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

func CellSize() int {
	return config.Get().UI.CellSize
}

func TurnInterval() int {
	return config.Get().UI.TurnInterval
}

// clickSource adapts the input handler into the seat's Input
// collaborator. UIGame only steps the match once a validated click is
// queued, so RequestMove never blocks the frame loop.
type clickSource struct {
	handler *input.Handler
}

func (c clickSource) RequestMove(b *core.Board) (int, error) {
	cell := c.handler.TakePendingCell()
	if !b.IsLegal(cell) {
		return -1, fmt.Errorf("%w: cell %d", core.ErrIllegalMove, cell)
	}
	return cell, nil
}

// UIGame runs a human-vs-strategy match inside an Ebitengine window.
type UIGame struct {
	match         *game.Match
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	humanMark core.Mark
	aiName    string

	// Frames until the next automated move
	turnTimer int
}

// NewUIGame creates a new Ebitengine game instance around a fresh match.
func NewUIGame(logger zerolog.Logger) (*UIGame, error) {
	g := &UIGame{
		defaultFont: basicfont.Face7x13,
		logger:      logger.With().Str("component", "ui_game").Logger(),
	}

	g.boardRenderer = renderer.NewBoardRenderer(CellSize(), g.defaultFont)
	g.inputHandler = input.NewHandler(CellSize())
	g.inputHandler.SetCellValidator(func(cell int) bool {
		return g.match.Board().IsLegal(cell)
	})

	if err := g.resetMatch(); err != nil {
		return nil, err
	}
	return g, nil
}

// resetMatch starts a new match using the configured marks and strategy.
func (g *UIGame) resetMatch() error {
	uiCfg := config.Get().UI

	g.humanMark = core.MarkX
	if uiCfg.HumanMark == "O" {
		g.humanMark = core.MarkO
	}
	g.aiName = uiCfg.AIStrategy

	aiStrategy, err := strategy.New(g.aiName, nil)
	if err != nil {
		return err
	}

	humanSeat := seat.NewHumanSeat(g.humanMark, clickSource{g.inputHandler})
	aiSeat := seat.NewStrategySeat(g.humanMark.Other(), aiStrategy)

	// X always opens
	seats := [2]*seat.Seat{humanSeat, aiSeat}
	if g.humanMark == core.MarkO {
		seats = [2]*seat.Seat{aiSeat, humanSeat}
	}

	match, err := game.NewMatch(game.Config{
		Seats:  seats,
		Logger: g.logger,
	})
	if err != nil {
		return err
	}

	g.match = match
	g.turnTimer = 0
	return nil
}

// Update advances the match by at most one move per frame.
func (g *UIGame) Update() error {
	g.inputHandler.Update()

	if g.match.IsOver() {
		g.inputHandler.SetPlayerTurn(false)
		// R starts a new game
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.resetMatch()
		}
		return nil
	}

	if g.match.CurrentMark() == g.humanMark {
		g.inputHandler.SetPlayerTurn(true)
		if !g.inputHandler.HasPendingCell() {
			return nil
		}
		g.turnTimer = 0
		return g.match.Step(context.Background())
	}

	// Automated seat: pace its moves so the human can follow along
	g.inputHandler.SetPlayerTurn(false)
	g.turnTimer++
	if g.turnTimer < TurnInterval() {
		return nil
	}
	g.turnTimer = 0
	return g.match.Step(context.Background())
}

// Draw renders the board and the status line.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	if g.match.CurrentMark() == g.humanMark && !g.match.IsOver() {
		g.boardRenderer.SetHover(g.inputHandler.HoveredCell())
	} else {
		g.boardRenderer.SetHover(-1)
	}
	g.boardRenderer.Draw(screen, g.match.Snapshot())

	statusY := CellSize()*3 + 10
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 5, statusY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("You: %s  Opponent: %s (%s)", g.humanMark, g.humanMark.Other(), g.aiName), 5, statusY+20)
}

func (g *UIGame) statusLine() string {
	if !g.match.IsOver() {
		if g.match.CurrentMark() == g.humanMark {
			return "Your turn: click an open cell"
		}
		return "Opponent is thinking..."
	}

	if winner := g.match.Winner(); winner != core.Empty {
		if winner == g.humanMark {
			return "You win! Press R for a new game"
		}
		return "You lose. Press R for a new game"
	}
	return "Draw. Press R for a new game"
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
