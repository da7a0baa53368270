package tetris

import "testing"

func TestNewGameStateStartsEmpty(t *testing.T) {
	s := NewGameState(1)
	if s.Board != (Board{}) {
		t.Error("expected a fresh game to start with an empty board")
	}
	if s.SpawnX != SpawnX || s.SpawnY != SpawnY {
		t.Errorf("SpawnX/SpawnY = %d/%d, want %d/%d", s.SpawnX, s.SpawnY, SpawnX, SpawnY)
	}
	if s.HasHold || s.UsedHoldThisTurn {
		t.Error("expected a fresh game to have no hold set and no hold used")
	}
	if s.Combo != 0 || s.BackToBack {
		t.Error("expected a fresh game to start with zero combo and no back-to-back")
	}
	if s.Bag == nil {
		t.Fatal("expected a populated bag")
	}
}

func TestNewGameStateDeterministicForSameSeed(t *testing.T) {
	a := NewGameState(42)
	b := NewGameState(42)
	if a.Current != b.Current {
		t.Errorf("Current = %v, want %v for identical seeds", a.Current, b.Current)
	}
	for i := 0; i < 10; i++ {
		pa := a.Bag.Pop()
		pb := b.Bag.Pop()
		if pa != pb {
			t.Fatalf("bag draw %d diverged: %v != %v", i, pa, pb)
		}
	}
}

func TestNextAfterHoldReturnsHeldPieceWhenPresent(t *testing.T) {
	s := NewGameState(1)
	s.HasHold = true
	s.HoldPiece = L
	p, ok := s.nextAfterHold()
	if !ok || p != L {
		t.Errorf("nextAfterHold() = %v, %v; want L, true", p, ok)
	}
}

func TestNextAfterHoldPeeksBagWhenEmpty(t *testing.T) {
	s := NewGameState(1)
	s.HasHold = false
	want := s.Bag.Peek(1)[0]
	p, ok := s.nextAfterHold()
	if !ok || p != want {
		t.Errorf("nextAfterHold() = %v, %v; want %v, true", p, ok, want)
	}
}

func TestApplyMoveAdvancesComboAndBackToBack(t *testing.T) {
	s := NewGameState(7)
	s.Combo = 2
	s.BackToBack = false
	landing := Landing{
		BoardAfter: s.Board,
		Combo:      3,
		Kind:       Clear4,
		LinesCleared: 4,
	}
	next := ApplyMove(s, landing)
	if next.Combo != 3 {
		t.Errorf("Combo = %d, want 3", next.Combo)
	}
	if !next.BackToBack {
		t.Error("expected back-to-back to be set after a Clear4")
	}
}

func TestApplyMoveNonQualifyingClearDropsBackToBack(t *testing.T) {
	s := NewGameState(7)
	s.BackToBack = true
	landing := Landing{
		BoardAfter:   s.Board,
		Combo:        1,
		Kind:         Clear1,
		LinesCleared: 1,
	}
	next := ApplyMove(s, landing)
	if next.BackToBack {
		t.Error("expected an ordinary single-line clear to break back-to-back")
	}
}

func TestApplyMoveWithoutLinesPreservesBackToBack(t *testing.T) {
	s := NewGameState(7)
	s.BackToBack = true
	landing := Landing{
		BoardAfter:   s.Board,
		Combo:        0,
		LinesCleared: 0,
	}
	next := ApplyMove(s, landing)
	if !next.BackToBack {
		t.Error("expected back-to-back to survive a non-clearing placement")
	}
}

func TestApplyMoveHoldSwapsCurrentIntoHold(t *testing.T) {
	s := NewGameState(3)
	s.UsedHoldThisTurn = false
	original := s.Current
	landing := Landing{BoardAfter: s.Board, UsedHold: true}
	next := ApplyMove(s, landing)
	if !next.HasHold {
		t.Fatal("expected HasHold to be set after a hold swap")
	}
	if next.HoldPiece != original {
		t.Errorf("HoldPiece = %v, want previous Current %v", next.HoldPiece, original)
	}
	if next.UsedHoldThisTurn {
		t.Error("expected UsedHoldThisTurn to reset to false on the resulting state")
	}
}

func TestApplyMoveReHoldSwapsWithoutDrawingFromBag(t *testing.T) {
	s := NewGameState(11)
	s.HasHold = true
	s.HoldPiece = S
	original := s.Current
	wantNextBagHead := s.Bag.Peek(1)[0]

	landing := Landing{BoardAfter: s.Board, UsedHold: true, PieceAfterHold: s.HoldPiece}
	next := ApplyMove(s, landing)

	if next.HoldPiece != original {
		t.Errorf("HoldPiece = %v, want previous Current %v", next.HoldPiece, original)
	}
	if next.Current != S {
		t.Errorf("Current = %v, want previously held S", next.Current)
	}
	if got := next.Bag.Peek(1)[0]; got != wantNextBagHead {
		t.Errorf("re-hold drew from the bag: next bag head = %v, want untouched head %v", got, wantNextBagHead)
	}
}

func TestApplyMoveWithoutHoldPreservesExistingHold(t *testing.T) {
	s := NewGameState(3)
	s.HasHold = true
	s.HoldPiece = S
	landing := Landing{BoardAfter: s.Board}
	next := ApplyMove(s, landing)
	if !next.HasHold || next.HoldPiece != S {
		t.Errorf("expected existing hold S to survive a non-hold move, got HasHold=%v HoldPiece=%v", next.HasHold, next.HoldPiece)
	}
}

func TestApplyMoveDrawsNextPieceFromBag(t *testing.T) {
	s := NewGameState(9)
	want := s.Bag.Peek(1)[0]
	landing := Landing{BoardAfter: s.Board}
	next := ApplyMove(s, landing)
	if next.Current != want {
		t.Errorf("Current = %v, want %v (head of the cloned bag)", next.Current, want)
	}
}

func TestApplyMoveClonesBagIndependently(t *testing.T) {
	s := NewGameState(9)
	landing := Landing{BoardAfter: s.Board}
	next := ApplyMove(s, landing)

	wantFromOriginal := s.Bag.Peek(1)[0]
	next.Bag.Pop()
	gotFromOriginal := s.Bag.Peek(1)[0]
	if gotFromOriginal != wantFromOriginal {
		t.Error("popping from the cloned bag should not affect the original state's bag")
	}
}

func TestIsDeadStateFalseOnEmptyBoard(t *testing.T) {
	s := NewGameState(1)
	if IsDeadState(s) {
		t.Error("expected an empty board to not be a dead state")
	}
}

func TestIsDeadStateTrueWhenNoLegalPlacementExists(t *testing.T) {
	s := NewGameState(1)
	s.Current = T
	var b Board
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			b[y][x] = Cell(I + 1)
		}
	}
	// Carve out exactly the spawn footprint so the spawn pose itself is
	// valid, but every cell around it stays solid: the piece can spawn
	// but cannot move, rotate, or drop anywhere, so it has no real
	// placement even though it isn't immediately topped out.
	shape := GetShapeCells(T, 0)
	for _, off := range shape {
		x, y := SpawnX+off.DX, SpawnY+off.DY
		b[y][x] = CellEmpty
	}
	s.Board = b

	if !IsDeadState(s) {
		t.Error("expected a valid-but-immovable spawn pose to count as dead")
	}
}

func TestIsDeadStateTrueWhenSpawnBlocked(t *testing.T) {
	s := NewGameState(1)
	shape := GetShapeCells(s.Current, 0)
	for _, off := range shape {
		x, y := SpawnX+off.DX, SpawnY+off.DY
		if InBounds(x, y) {
			s.Board[y][x] = Cell(I + 1)
		}
	}
	for _, off := range shape {
		x, y := SpawnX+off.DX, SpawnY+1+off.DY
		if InBounds(x, y) {
			s.Board[y][x] = Cell(I + 1)
		}
	}
	if !IsDeadState(s) {
		t.Error("expected both spawn rows blocked to be a dead state")
	}
}
