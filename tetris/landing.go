package tetris

// Landing describes one reachable final placement of a piece: where it
// lands, the board and scoring state that results, and the input path a
// player (or bot) would need to execute to reach it.
type Landing struct {
	BoardAfter Board
	FinalX     int
	FinalY     int
	FinalRot   int
	Piece      PieceKind
	Path       []Action

	LinesCleared int
	Kind         ClearKind
	Combo        int
	BackToBack   bool
	PerfectClear bool

	UsedHold      bool
	PieceAfterHold PieceKind
	UsedTPiece    bool

	Attack int
}
