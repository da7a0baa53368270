package tetris

import "testing"

func TestFindPathSameStartAndTarget(t *testing.T) {
	var b Board
	path := FindPath(&b, T, SpawnX, SpawnY, 0, SpawnX, SpawnY, 0)
	if path == nil {
		t.Fatal("expected non-nil path for start == target")
	}
	if len(path) != 0 {
		t.Errorf("len(path) = %d, want 0", len(path))
	}
}

func TestFindPathStraightDrop(t *testing.T) {
	var b Board
	path := FindPath(&b, O, 4, 20, 0, 4, 0, 0)
	if path == nil {
		t.Fatal("expected a path straight down on an empty board")
	}
	for _, a := range path {
		if a != SoftDrop {
			t.Errorf("expected only SoftDrop actions, got %v", a)
		}
	}
}

func TestFindPathUnreachableTarget(t *testing.T) {
	var b Board
	// A solid wall at row 3 seals off everything below it: nothing starting
	// above the wall can ever reach a pose beneath it.
	for x := 0; x < BoardWidth; x++ {
		b[3][x] = Cell(I + 1)
	}
	path := FindPath(&b, O, 4, 20, 0, 4, 0, 0)
	if path != nil {
		t.Errorf("expected unreachable target to return nil, got %v", path)
	}
}

func TestCanReachMatchesFindPath(t *testing.T) {
	var b Board
	if !CanReach(&b, T, 4, 20, 0, 4, 0, 0) {
		t.Error("expected CanReach true for a clear straight drop")
	}
	if CanReach(&b, T, 4, 20, 0, 4, 0, 0) != (FindPath(&b, T, 4, 20, 0, 4, 0, 0) != nil) {
		t.Error("expected CanReach to agree with FindPath returning a non-nil path")
	}
}

func TestFindPathSidewaysMove(t *testing.T) {
	var b Board
	path := FindPath(&b, O, 4, 0, 0, 6, 0, 0)
	if path == nil {
		t.Fatal("expected a path moving sideways on the floor")
	}
	for _, a := range path {
		if a != MoveRight {
			t.Errorf("expected only MoveRight actions, got %v", a)
		}
	}
	if len(path) != 2 {
		t.Errorf("len(path) = %d, want 2", len(path))
	}
}

func TestFindPathRotation(t *testing.T) {
	var b Board
	path := FindPath(&b, T, 4, 20, 0, 4, 20, 1)
	if path == nil {
		t.Fatal("expected a path rotating on an empty board")
	}
	if len(path) != 1 || path[0] != RotateCW {
		t.Errorf("path = %v, want a single RotateCW", path)
	}
}
