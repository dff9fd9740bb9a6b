package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// -----------------------------------------------------------------------------
// Colour definitions
// -----------------------------------------------------------------------------

var MarkColors = map[core.Mark]color.Color{
	core.Empty: color.RGBA{40, 40, 40, 255},   // unplayed - dark gray
	core.MarkX: color.RGBA{200, 50, 50, 255},  // X - red
	core.MarkO: color.RGBA{50, 100, 200, 255}, // O - blue
}

var (
	GridLineColor = color.RGBA{90, 90, 90, 255}
	HoverColor    = color.RGBA{70, 70, 70, 255}
	MarkTextColor = color.White
	gridLineWidth = 2
)

// BoardRenderer draws the 3x3 grid and the marks placed on it.
type BoardRenderer struct {
	cellSize    int
	defaultFont font.Face

	// hover is the cell under the cursor, -1 when none
	hover int
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(cellSize int, f font.Face) *BoardRenderer {
	return &BoardRenderer{cellSize: cellSize, defaultFont: f, hover: -1}
}

// SetHover highlights the given cell; pass -1 to clear.
func (br *BoardRenderer) SetHover(cell int) {
	br.hover = cell
}

// Draw renders the cells onto the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, cells [core.NumCells]core.Mark) {
	for i, mark := range cells {
		gridX := i % 3
		gridY := i / 3

		screenX := float64(gridX * br.cellSize)
		screenY := float64(gridY * br.cellSize)

		cell := ebiten.NewImage(br.cellSize, br.cellSize)

		// Background pass
		if mark == core.Empty && i == br.hover {
			cell.Fill(HoverColor)
		} else {
			cell.Fill(MarkColors[mark])
		}

		// Grid line pass: right and bottom edge of each cell
		edge := ebiten.NewImage(gridLineWidth, br.cellSize)
		edge.Fill(GridLineColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(br.cellSize-gridLineWidth), 0)
		cell.DrawImage(edge, op)

		edge = ebiten.NewImage(br.cellSize, gridLineWidth)
		edge.Fill(GridLineColor)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(br.cellSize-gridLineWidth))
		cell.DrawImage(edge, op)

		// Mark pass
		if mark != core.Empty && br.defaultFont != nil {
			label := mark.String()
			b := text.BoundString(br.defaultFont, label)
			textW := b.Max.X - b.Min.X
			textH := b.Max.Y - b.Min.Y

			x := (br.cellSize - textW) / 2
			y := (br.cellSize + textH) / 2
			text.Draw(cell, label, br.defaultFont, x, y, MarkTextColor)
		}

		// Blit cell to screen
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(screenX, screenY)
		screen.DrawImage(cell, op)
	}
}
