package tetris

// Action is a single legal move the control system can issue while a piece
// is airborne.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
)

// node is a BFS state: piece pose (x, y, rotation).
type node struct {
	x, y, rot int
}

// pathEdge records, for a visited node, the predecessor node and the
// action that led to it. The start node's predecessor is itself.
type pathEdge struct {
	from   node
	action Action
}

// FindPath runs a breadth-first search over (x, y, rot) poses from the
// start pose to the target pose and returns the action sequence that
// reaches it, reconstructed via predecessor links. The start pose's
// predecessor is itself. Returns nil if the target was never visited, and
// a zero-length (non-nil) slice when start equals target. EnumerateLandings
// treats both as "no path was taken" and checks len(path) == 0, since a
// zero-length path is not proof the target was reached by a real candidate
// move; CanReach checks path != nil and so counts start == target as
// reachable.
func FindPath(board *Board, piece PieceKind, sx, sy, srot, tx, ty, trot int) []Action {
	start := node{sx, sy, normRot(srot)}
	target := node{tx, ty, normRot(trot)}

	pred := map[node]pathEdge{start: {from: start}}
	queue := []node{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return reconstructPath(pred, start, target)
		}
		for _, next := range neighbors(board, piece, cur) {
			if _, seen := pred[next.node]; seen {
				continue
			}
			pred[next.node] = pathEdge{from: cur, action: next.action}
			queue = append(queue, next.node)
		}
	}
	return nil
}

// CanReach reports whether target is reachable from the start pose, without
// building the path. A pose is always reachable from itself.
func CanReach(board *Board, piece PieceKind, sx, sy, srot, tx, ty, trot int) bool {
	return FindPath(board, piece, sx, sy, srot, tx, ty, trot) != nil
}

type neighbor struct {
	node   node
	action Action
}

// neighbors enumerates the legal translations and SRS-kicked rotations
// reachable in one action from cur.
func neighbors(board *Board, piece PieceKind, cur node) []neighbor {
	var out []neighbor
	shape := GetShapeCells(piece, cur.rot)

	if IsValidPosition(board, shape, cur.x-1, cur.y) {
		out = append(out, neighbor{node{cur.x - 1, cur.y, cur.rot}, MoveLeft})
	}
	if IsValidPosition(board, shape, cur.x+1, cur.y) {
		out = append(out, neighbor{node{cur.x + 1, cur.y, cur.rot}, MoveRight})
	}
	if IsValidPosition(board, shape, cur.x, cur.y-1) {
		out = append(out, neighbor{node{cur.x, cur.y - 1, cur.rot}, SoftDrop})
	}

	if n, ok := tryRotate(board, piece, cur, 1); ok {
		out = append(out, neighbor{n, RotateCW})
	}
	if n, ok := tryRotate(board, piece, cur, -1); ok {
		out = append(out, neighbor{n, RotateCCW})
	}
	return out
}

// tryRotate attempts to rotate cur by dir (+1 CW, -1 CCW), trying each SRS
// kick offset in order and returning the first valid resulting pose.
func tryRotate(board *Board, piece PieceKind, cur node, dir int) (node, bool) {
	toRot := normRot(cur.rot + dir)
	if toRot == cur.rot {
		return node{}, false
	}
	newShape := GetShapeCells(piece, toRot)
	for _, kick := range GetKicks(piece, cur.rot, toRot) {
		nx, ny := cur.x+kick.DX, cur.y+kick.DY
		if IsValidPosition(board, newShape, nx, ny) {
			return node{nx, ny, toRot}, true
		}
	}
	return node{}, false
}

func reconstructPath(pred map[node]pathEdge, start, target node) []Action {
	var rev []Action
	cur := target
	for cur != start {
		e := pred[cur]
		rev = append(rev, e.action)
		cur = e.from
	}
	path := make([]Action, len(rev))
	for i, a := range rev {
		path[len(rev)-1-i] = a
	}
	return path
}
