package tetris

// searchColumnMargin extends the enumerated column range four cells past
// each edge of the board, since a piece's reference point can sit outside
// [0, BoardWidth) while its occupied cells are still in bounds (shape
// cells sit up to three columns from the reference point).
const searchColumnMargin = 4

// EnumerateLandings returns every Landing reachable for piece spawning at
// (spawnX, spawnY) on board, carrying combo/back-to-back into each result.
// For every (rotation, column) pair it tries the primary spawn row, falling
// back one row up if the primary row is blocked, drops from there, and
// keeps the placement only if FindPath returns a non-empty path from the
// primary spawn pose — a zero-length path (including the start-equals-
// target case) is treated as unreachable, not as "no moves needed", per
// FindPath's documented semantics. Reachability is always checked from the
// primary spawn pose (spawnY), even when the drop itself used the fallback
// row — a piece that only fits one row higher is still only considered
// reachable if the nominal spawn pose leads there by BFS.
func EnumerateLandings(board *Board, piece PieceKind, spawnX, spawnY, currentCombo int, currentB2B bool) []Landing {
	var out []Landing

	for rot := 0; rot < 4; rot++ {
		shape := GetShapeCells(piece, rot)
		for x := -searchColumnMargin; x < BoardWidth+searchColumnMargin; x++ {
			startY := spawnY
			if !IsValidPosition(board, shape, x, startY) {
				startY = spawnY + 1
				if !IsValidPosition(board, shape, x, startY) {
					continue
				}
			}

			y := DropPiece(board, shape, x, startY)

			path := FindPath(board, piece, spawnX, spawnY, 0, x, y, rot)
			if len(path) == 0 {
				continue
			}

			result := StepLockPiece(board, piece, shape, x, startY)

			l := Landing{
				Piece:        piece,
				BoardAfter:   result.BoardAfter,
				FinalX:       x,
				FinalY:       y,
				FinalRot:     rot,
				LinesCleared: result.LinesCleared,
				Kind:         result.Kind,
				PerfectClear: result.PerfectClear,
				Path:         path,
				UsedTPiece:   piece == T,
			}
			l.Combo = nextCombo(currentCombo, l.LinesCleared)
			l.BackToBack = currentB2B
			l.Attack = ComputeAttack(l.Kind, l.LinesCleared, l.Combo, currentB2B, l.PerfectClear)
			out = append(out, l)
		}
	}
	return out
}

// EnumerateDropLandingsFromBoard returns every Landing for piece dropped
// straight down onto board from high above, for every rotation and column,
// with no reachability check and no combo/back-to-back/attack bookkeeping.
// It is used to sample possible resulting boards independent of any
// particular game's spawn position or scoring state.
func EnumerateDropLandingsFromBoard(board *Board, piece PieceKind) []Landing {
	var out []Landing

	for rot := 0; rot < 4; rot++ {
		shape := GetShapeCells(piece, rot)
		// Start at the highest row where the shape's top cell is still on
		// the board.
		top := 0
		for _, off := range shape {
			if off.DY > top {
				top = off.DY
			}
		}
		for x := -searchColumnMargin; x < BoardWidth+searchColumnMargin; x++ {
			startY := BoardHeight - 1 - top
			if !IsValidPosition(board, shape, x, startY) {
				continue
			}

			y := DropPiece(board, shape, x, startY)
			result := StepLockPiece(board, piece, shape, x, startY)

			out = append(out, Landing{
				Piece:        piece,
				BoardAfter:   result.BoardAfter,
				FinalX:       x,
				FinalY:       y,
				FinalRot:     rot,
				LinesCleared: result.LinesCleared,
				Kind:         result.Kind,
				PerfectClear: result.PerfectClear,
				UsedTPiece:   piece == T,
			})
		}
	}
	return out
}

// nextCombo returns the combo count that results from clearing lines
// lines-many rows given the current combo. A non-clearing placement resets
// combo to zero; a clearing placement increments it.
func nextCombo(currentCombo, linesCleared int) int {
	if linesCleared == 0 {
		return 0
	}
	return currentCombo + 1
}

// LegalMoves returns every Landing reachable from state this turn: placing
// the current piece directly, and — when hold hasn't been used yet this
// turn — placing the held (or next, if hold is empty) piece after swapping
// it in.
func LegalMoves(state *GameState) []Landing {
	var out []Landing

	direct := EnumerateLandings(&state.Board, state.Current, state.SpawnX, state.SpawnY, state.Combo, state.BackToBack)
	out = append(out, direct...)

	if state.UsedHoldThisTurn {
		return out
	}

	holdPiece, ok := state.nextAfterHold()
	if !ok {
		return out
	}

	swapped := EnumerateLandings(&state.Board, holdPiece, state.SpawnX, state.SpawnY, state.Combo, state.BackToBack)
	for _, l := range swapped {
		l.UsedHold = true
		l.PieceAfterHold = holdPiece
		out = append(out, l)
	}

	return out
}
