package tetris

// ClearKind classifies the outcome of a single piece lock.
type ClearKind int

const (
	None ClearKind = iota
	Clear1
	Clear2
	Clear3
	Clear4
	Tspin1
	Tspin2
	Tspin3
	MiniTspin1
	MiniTspin2
)

// StepResult is the outcome of locking one piece at a resolved pose.
type StepResult struct {
	BoardAfter   Board
	LinesCleared int
	Kind         ClearKind
	PerfectClear bool
}

// StepLockPiece drops shape at column x from startY, locks it, clears any
// full rows, and classifies the result (including T-spin / mini detection).
func StepLockPiece(board *Board, piece PieceKind, shape [4]Offset, x, startY int) StepResult {
	y := DropPiece(board, shape, x, startY)
	placed := PlacePiece(board, shape, x, y, Cell(piece+1))

	isTspin, isMini := false, false
	if piece == T {
		isTspin, isMini = classifyTspin(&placed, x, y)
	}

	boardAfter, lines := ClearLines(&placed)

	return StepResult{
		BoardAfter:   boardAfter,
		LinesCleared: lines,
		Kind:         classifyKind(piece, isTspin, isMini, lines),
		PerfectClear: boardAfter.IsEmpty(),
	}
}

// classifyTspin implements spec.md's corner rule: the T's center is at
// (x+1, y+1); count the four diagonal neighbors that are occupied or off
// the board. >=3 occupied-or-wall is a T-spin; if not both of the two upper
// diagonals are occupied-or-wall, it's additionally a mini. This checks
// corner occupancy only — it does not verify the last action was a
// rotation (spec.md's open-question #2).
func classifyTspin(board *Board, x, y int) (isTspin, isMini bool) {
	cx, cy := x+1, y+1
	occupiedOrWall := func(px, py int) bool {
		if !InBounds(px, py) {
			return true
		}
		return board[py][px] != CellEmpty
	}

	topLeft := occupiedOrWall(cx-1, cy+1)
	topRight := occupiedOrWall(cx+1, cy+1)
	botLeft := occupiedOrWall(cx-1, cy-1)
	botRight := occupiedOrWall(cx+1, cy-1)

	count := 0
	for _, v := range []bool{topLeft, topRight, botLeft, botRight} {
		if v {
			count++
		}
	}
	if count < 3 {
		return false, false
	}
	return true, !(topLeft && topRight)
}

// classifyKind assigns the final ClearKind, preferring T-spin/mini
// classification over ordinary line-clear naming when piece is T.
func classifyKind(piece PieceKind, isTspin, isMini bool, lines int) ClearKind {
	if piece == T && isTspin {
		switch lines {
		case 1:
			return Tspin1
		case 2:
			return Tspin2
		case 3:
			return Tspin3
		}
	}
	if piece == T && isMini {
		switch lines {
		case 1:
			return MiniTspin1
		case 2:
			return MiniTspin2
		}
	}
	switch lines {
	case 1:
		return Clear1
	case 2:
		return Clear2
	case 3:
		return Clear3
	case 4:
		return Clear4
	default:
		return None
	}
}

// isTspinKind and isMiniKind are small classification predicates.
// isTspinKind is used by the evaluator and by isB2BQualifying; isMiniKind
// has no caller in this package.
func isTspinKind(k ClearKind) bool {
	return k == Tspin1 || k == Tspin2 || k == Tspin3
}

func isMiniKind(k ClearKind) bool {
	return k == MiniTspin1 || k == MiniTspin2
}

func isB2BQualifying(k ClearKind) bool {
	return isTspinKind(k) || k == Clear4
}
