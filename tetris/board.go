package tetris

// Board dimensions. The playfield is ten columns wide and forty rows tall —
// twenty visible plus a twenty-row buffer above it for spawning and
// rotation headroom. Row 0 is the bottom row; y grows upward.
const (
	BoardWidth  = 10
	BoardHeight = 40
)

// Cell is a single board position. Zero means empty; 1..7 record which
// piece kind (kind+1) last locked there, and received garbage uses its own
// value.
type Cell uint8

// CellEmpty is the zero value for an unoccupied cell.
const CellEmpty Cell = 0

// Board is the full 40x10 playfield. Board[y][x], y=0 is the bottom row.
// A Board is a value type: every operation in this package returns a new
// Board rather than mutating the receiver.
type Board [BoardHeight][BoardWidth]Cell

// Offset is a relative (dx, dy) cell offset, used both for piece shapes and
// SRS kick tables.
type Offset struct {
	DX, DY int
}

// InBounds reports whether (x, y) lies within the playfield.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// IsValidPosition reports whether every cell of shape, placed with its
// reference point at (px, py), is in bounds and unoccupied.
func IsValidPosition(board *Board, shape [4]Offset, px, py int) bool {
	for _, off := range shape {
		x, y := px+off.DX, py+off.DY
		if !InBounds(x, y) {
			return false
		}
		if board[y][x] != CellEmpty {
			return false
		}
	}
	return true
}

// DropPiece returns the largest y' <= startY such that shape is valid at
// (x, y'); it simulates gravity pulling the piece straight down from
// startY. Callers must ensure the shape is valid at (x, startY).
func DropPiece(board *Board, shape [4]Offset, x, startY int) int {
	y := startY
	for IsValidPosition(board, shape, x, y-1) {
		y--
	}
	return y
}

// PlacePiece returns a new board equal to board with every shape cell set
// to v. Cells outside the shape are unchanged.
func PlacePiece(board *Board, shape [4]Offset, x, y int, v Cell) Board {
	out := *board
	for _, off := range shape {
		cx, cy := x+off.DX, y+off.DY
		if InBounds(cx, cy) {
			out[cy][cx] = v
		}
	}
	return out
}

// ClearLines compacts board by discarding every fully occupied row and
// padding the top with empty rows, preserving the relative order of the
// surviving rows. It returns the new board and the number of rows cleared.
func ClearLines(board *Board) (Board, int) {
	var out Board
	dst := 0
	cleared := 0
	for y := 0; y < BoardHeight; y++ {
		if rowFull(board, y) {
			cleared++
			continue
		}
		out[dst] = board[y]
		dst++
	}
	for ; dst < BoardHeight; dst++ {
		out[dst] = [BoardWidth]Cell{}
	}
	return out, cleared
}

func rowFull(board *Board, y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if board[y][x] == CellEmpty {
			return false
		}
	}
	return true
}

// IsEmpty reports whether board has no occupied cells at all, used for
// perfect-clear detection.
func (b *Board) IsEmpty() bool {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b[y][x] != CellEmpty {
				return false
			}
		}
	}
	return true
}
