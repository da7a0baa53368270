package tetris

import "fmt"

// PieceKind identifies a tetromino shape.
type PieceKind int

const (
	I PieceKind = iota
	O
	T
	S
	Z
	J
	L
	numPieceKinds
)

// String implements fmt.Stringer for diagnostics and panic messages.
func (p PieceKind) String() string {
	switch p {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(p))
	}
}

// pieceClass groups pieces by kick-table family: I has its own table, O
// never kicks, and J/L/S/T/Z share the JLSTZ table.
type pieceClass int

const (
	classJLSTZ pieceClass = iota
	classI
	classO
)

func (p PieceKind) class() pieceClass {
	switch p {
	case I:
		return classI
	case O:
		return classO
	case J, L, S, T, Z:
		return classJLSTZ
	default:
		panic("tetris: unknown piece kind " + p.String())
	}
}

// shapeTable holds the four rotation states of a piece, one [4]Offset per
// rotation. Reference point (0,0) is the bottom-left corner of the piece's
// bounding box; DY grows upward, matching Board's row convention. These are
// the canonical SRS offsets — not the source's ad hoc tables, per the
// redesign flag calling out its duplicated Z-piece rotation.
var shapeTable = [numPieceKinds][4][4]Offset{
	I: {
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 3}, {2, 2}, {2, 1}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 3}, {1, 2}, {1, 1}, {1, 0}},
	},
	O: {
		{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
		{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
		{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
		{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	},
	T: {
		{{1, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	S: {
		{{1, 2}, {2, 2}, {0, 1}, {1, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 1}, {2, 1}, {0, 0}, {1, 0}},
		{{0, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	Z: {
		{{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		{{2, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {0, 0}},
	},
	J: {
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {2, 2}, {1, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 2}, {1, 1}, {0, 0}, {1, 0}},
	},
	L: {
		{{2, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 0}},
		{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
	},
}

// GetShapeCells returns the four (dx, dy) offsets for (piece, rot), rot
// normalized modulo 4. Panics on an unknown piece kind.
func GetShapeCells(piece PieceKind, rot int) [4]Offset {
	if piece < 0 || piece >= numPieceKinds {
		panic(fmt.Sprintf("tetris: unknown piece kind %d", int(piece)))
	}
	return shapeTable[piece][normRot(rot)]
}

func normRot(rot int) int {
	r := rot % 4
	if r < 0 {
		r += 4
	}
	return r
}

// kickKey identifies a (fromRot, toRot) quarter-turn transition.
type kickKey struct {
	from, to int
}

// jlstzKicks and iKicks are the standard SRS wall-kick tables. Only +-1
// quarter turns are defined; 180-degree rotation is not part of SRS.
var jlstzKicks = map[kickKey][5]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[kickKey][5]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var oKicks = [1]Offset{{0, 0}}

// GetKicks returns the ordered kick list tried when rotating piece from
// fromRot to toRot (which must differ by exactly one quarter turn). The
// first offset that yields a valid placement wins. Callers must not call
// this when fromRot == toRot.
func GetKicks(piece PieceKind, fromRot, toRot int) []Offset {
	from, to := normRot(fromRot), normRot(toRot)
	if from == to {
		panic("tetris: GetKicks called with fromRot == toRot")
	}
	switch piece.class() {
	case classO:
		return oKicks[:]
	case classI:
		k := iKicks[kickKey{from, to}]
		return k[:]
	default:
		k := jlstzKicks[kickKey{from, to}]
		return k[:]
	}
}

// SpawnX, SpawnY are the nominal spawn reference point, matching spec.md's
// (x=4, y=20) primary spawn with a (4, 21) fallback.
const (
	SpawnX = 4
	SpawnY = 20
)

// SpawnPositionWithFallback tries the standard spawn pose (SpawnX, SpawnY)
// at rotation 0; if that's blocked, it retries one row higher. Returns
// (-1, -1) if both are blocked, signaling the caller is already topped out.
func SpawnPositionWithFallback(board *Board, piece PieceKind) (x, y int) {
	shape := GetShapeCells(piece, 0)
	if IsValidPosition(board, shape, SpawnX, SpawnY) {
		return SpawnX, SpawnY
	}
	if IsValidPosition(board, shape, SpawnX, SpawnY+1) {
		return SpawnX, SpawnY + 1
	}
	return -1, -1
}
