package tetris

// DefaultMaxReceive is the default cap on garbage rows applied per call,
// per spec.md's apply_garbage(..., max_receive=10) default.
const DefaultMaxReceive = 10

// ApplyGarbage inserts up to min(lines, maxReceive) rows at the bottom of
// board, shifting every existing row upward (rows that fall off the top
// are discarded). Each inserted row is fully filled except column holeX,
// which is left empty; holeX outside [0, BoardWidth) yields a fully filled
// row rather than an error, per spec.md's clamping error policy. Returns
// the number of rows actually applied.
func ApplyGarbage(board *Board, lines, holeX, maxReceive int) (Board, int) {
	applied := lines
	if applied > maxReceive {
		applied = maxReceive
	}
	if applied <= 0 {
		return *board, 0
	}

	out := *board
	for i := 0; i < applied; i++ {
		for y := BoardHeight - 1; y > 0; y-- {
			out[y] = out[y-1]
		}
		var row [BoardWidth]Cell
		for x := 0; x < BoardWidth; x++ {
			row[x] = garbageCell
		}
		if holeX >= 0 && holeX < BoardWidth {
			row[holeX] = CellEmpty
		}
		out[0] = row
	}
	return out, applied
}

// garbageCell marks a garbage-inserted cell. It is distinct from any piece
// kind's cell value (1..7) so downstream renderers can tell locked pieces
// from received garbage.
const garbageCell Cell = 255
