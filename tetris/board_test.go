package tetris

import "testing"

func TestInBounds(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 39, true},
		{-1, 0, false},
		{10, 0, false},
		{0, -1, false},
		{0, 40, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIsValidPositionOutOfBounds(t *testing.T) {
	var b Board
	shape := GetShapeCells(O, 0)
	if IsValidPosition(&b, shape, -1, 0) {
		t.Error("expected out-of-bounds placement to be invalid")
	}
	if !IsValidPosition(&b, shape, 4, 0) {
		t.Error("expected in-bounds placement on empty board to be valid")
	}
}

func TestIsValidPositionCollision(t *testing.T) {
	var b Board
	b[0][4] = Cell(T + 1)
	shape := GetShapeCells(O, 0)
	if IsValidPosition(&b, shape, 4, 0) {
		t.Error("expected placement overlapping an occupied cell to be invalid")
	}
}

func TestDropPieceRestsOnFloor(t *testing.T) {
	var b Board
	shape := GetShapeCells(O, 0)
	y := DropPiece(&b, shape, 0, BoardHeight-1)
	if y != 0 {
		t.Errorf("DropPiece on empty board = %d, want 0", y)
	}
}

func TestDropPieceRestsOnStack(t *testing.T) {
	var b Board
	for x := 0; x < BoardWidth; x++ {
		b[0][x] = Cell(I + 1)
	}
	shape := GetShapeCells(O, 0)
	y := DropPiece(&b, shape, 0, BoardHeight-1)
	if y != 1 {
		t.Errorf("DropPiece onto filled row = %d, want 1", y)
	}
}

func TestPlacePieceDoesNotMutateSource(t *testing.T) {
	var b Board
	shape := GetShapeCells(O, 0)
	out := PlacePiece(&b, shape, 0, 0, Cell(O+1))
	if b[0][0] != CellEmpty {
		t.Error("PlacePiece mutated the source board")
	}
	if out[0][0] == CellEmpty {
		t.Error("PlacePiece did not set the destination board")
	}
}

func TestClearLinesCompactsAndPreservesOrder(t *testing.T) {
	var b Board
	for x := 0; x < BoardWidth; x++ {
		b[0][x] = Cell(I + 1)
	}
	b[1][3] = Cell(T + 1)

	out, cleared := ClearLines(&b)
	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}
	if out[0][3] != Cell(T+1) {
		t.Errorf("expected surviving row to drop to row 0, got %v", out[0])
	}
	if out[1] != ([BoardWidth]Cell{}) {
		t.Errorf("expected row 1 to be empty padding, got %v", out[1])
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	var b Board
	b[5][2] = Cell(L + 1)
	out, cleared := ClearLines(&b)
	if cleared != 0 {
		t.Fatalf("cleared = %d, want 0", cleared)
	}
	if out[5][2] != Cell(L+1) {
		t.Error("board changed despite no full rows")
	}
}

func TestIsEmpty(t *testing.T) {
	var b Board
	if !b.IsEmpty() {
		t.Error("zero-value board should be empty")
	}
	b[3][3] = Cell(S + 1)
	if b.IsEmpty() {
		t.Error("board with an occupied cell should not be empty")
	}
}
