package tetris

// Winner identifies the outcome of a head-to-head duel.
type Winner int

const (
	NoWinner Winner = iota
	Player1
	Player2
	Draw
)

// IsDead reports whether piece cannot be spawned on board: its spawn pose
// and the one-row fallback are both blocked.
func IsDead(board *Board, piece PieceKind) bool {
	x, _ := SpawnPositionWithFallback(board, piece)
	return x < 0
}

// JudgeWinner decides a duel from both players' board and current piece:
// whichever player is not dead wins; if both are dead it's a draw; if
// neither is dead, the duel is still undecided and there is no winner yet.
func JudgeWinner(board1 *Board, piece1 PieceKind, board2 *Board, piece2 PieceKind) Winner {
	dead1 := IsDead(board1, piece1)
	dead2 := IsDead(board2, piece2)

	switch {
	case dead1 && !dead2:
		return Player2
	case dead2 && !dead1:
		return Player1
	case dead1 && dead2:
		return Draw
	default:
		return NoWinner
	}
}
