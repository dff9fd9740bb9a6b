// Package input turns mouse state into cell choices. The handler is
// the human input collaborator for a UI-driven seat: it only ever
// queues cells its validator accepts, so the seat's moves are legal by
// construction.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Handler tracks the cursor and pending cell clicks.
type Handler struct {
	// Mouse state
	mouseX, mouseY int

	// Pending click, -1 when none
	pendingCell int

	// UI state
	cellSize     int
	isPlayerTurn bool

	// Validation callback; a click on a cell it rejects is ignored
	cellValidator func(cell int) bool
}

// NewHandler creates a handler for a board drawn with the given cell size.
func NewHandler(cellSize int) *Handler {
	return &Handler{
		cellSize:    cellSize,
		pendingCell: -1,
	}
}

// SetCellValidator installs the legality check applied to clicks.
func (h *Handler) SetCellValidator(f func(cell int) bool) {
	h.cellValidator = f
}

// SetPlayerTurn enables or disables click handling.
func (h *Handler) SetPlayerTurn(active bool) {
	h.isPlayerTurn = active
	if !active {
		h.pendingCell = -1
	}
}

// Update polls mouse state. Call once per frame.
func (h *Handler) Update() {
	h.mouseX, h.mouseY = ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.handleLeftClick()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Right click cancels a queued cell
		h.pendingCell = -1
	}
}

func (h *Handler) handleLeftClick() {
	if !h.isPlayerTurn {
		return
	}

	cell, ok := h.cellAt(h.mouseX, h.mouseY)
	if !ok {
		return
	}
	if h.cellValidator != nil && !h.cellValidator(cell) {
		return
	}
	h.pendingCell = cell
}

// cellAt maps screen coordinates to a cell index.
func (h *Handler) cellAt(x, y int) (int, bool) {
	col := x / h.cellSize
	row := y / h.cellSize
	if x < 0 || y < 0 || col > 2 || row > 2 {
		return -1, false
	}
	return row*3 + col, true
}

// HoveredCell returns the cell under the cursor, or -1 when the cursor
// is outside the grid.
func (h *Handler) HoveredCell() int {
	cell, ok := h.cellAt(h.mouseX, h.mouseY)
	if !ok {
		return -1
	}
	return cell
}

// HasPendingCell reports whether a validated click is queued.
func (h *Handler) HasPendingCell() bool {
	return h.pendingCell >= 0
}

// TakePendingCell returns the queued cell and clears it.
func (h *Handler) TakePendingCell() int {
	cell := h.pendingCell
	h.pendingCell = -1
	return cell
}
