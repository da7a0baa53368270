package tetris

// GameState is a single player's full mutable game state: the board, the
// active piece, the held piece (if any), the 7-bag queue, and the scoring
// context (combo / back-to-back) carried from one placement to the next.
type GameState struct {
	Board   Board
	Current PieceKind
	Bag     *Bag

	HasHold          bool
	HoldPiece        PieceKind
	UsedHoldThisTurn bool

	SpawnX int
	SpawnY int

	Combo      int
	BackToBack bool
}

// NewGameState builds a fresh game with an empty board, seeded 7-bag
// randomizer, and the first piece drawn from it.
func NewGameState(seed uint64) *GameState {
	bag := NewBag(seed)
	return &GameState{
		Current: bag.Pop(),
		Bag:     bag,
		SpawnX:  SpawnX,
		SpawnY:  SpawnY,
	}
}

// nextAfterHold returns the piece that would become Current if the player
// held right now: the currently held piece if one exists, otherwise the
// next piece in the bag. ok is false only if there is no piece to swap to,
// which cannot happen once the bag has been populated.
func (s *GameState) nextAfterHold() (PieceKind, bool) {
	if s.HasHold {
		return s.HoldPiece, true
	}
	peek := s.Bag.Peek(1)
	if len(peek) == 0 {
		return 0, false
	}
	return peek[0], true
}

// ApplyMove commits landing to state, returning the resulting next state.
// It takes the landing's already locked and cleared board, advances combo
// and back-to-back, and resets the per-turn hold lock. When landing.UsedHold is set, the first
// ever hold moves Current into HoldPiece and draws a fresh piece from the
// bag; every hold after that swaps Current and HoldPiece in place and
// draws nothing new. A non-hold move simply draws the next piece.
func ApplyMove(state *GameState, landing Landing) *GameState {
	next := &GameState{
		Board:      landing.BoardAfter,
		Bag:        state.Bag.Clone(),
		SpawnX:     state.SpawnX,
		SpawnY:     state.SpawnY,
		Combo:      landing.Combo,
		BackToBack: state.BackToBack,
	}
	if landing.LinesCleared > 0 {
		next.BackToBack = isB2BQualifying(landing.Kind)
	}

	if landing.UsedHold {
		next.HasHold = true
		next.HoldPiece = state.Current
		if state.HasHold {
			// Re-hold: swap the current and held pieces in place, drawing
			// nothing new from the bag.
			next.Current = landing.PieceAfterHold
		} else {
			// First-ever hold: the old current piece is now held, and the
			// new current piece is drawn from the bag.
			next.Current = next.Bag.Pop()
		}
	} else {
		next.Current = next.Bag.Pop()
		next.HasHold = state.HasHold
		next.HoldPiece = state.HoldPiece
	}
	next.UsedHoldThisTurn = false

	return next
}

// IsDeadState reports whether state's current piece cannot spawn — its
// canonical spawn pose and the one-row fallback are both blocked — or can
// spawn but has no legal placement anywhere on the board (hold excluded).
func IsDeadState(state *GameState) bool {
	x, _ := SpawnPositionWithFallback(&state.Board, state.Current)
	if x < 0 {
		return true
	}
	moves := EnumerateLandings(&state.Board, state.Current, state.SpawnX, state.SpawnY, state.Combo, state.BackToBack)
	return len(moves) == 0
}
