package tetris

// BoardFeatures holds the raw heuristic measurements EvaluateBoard combines
// with a Weights set. Exposed separately so callers (and tests) can inspect
// individual features without recomputing the whole score.
type BoardFeatures struct {
	Heights    [BoardWidth]int
	MaxHeight  int
	RowTrans   int
	Covered    int
	CoveredSq  int
	Cavities   int
	Overhangs  int
	WellColumn int
	WellDepth  int
	Bumpiness  int
	BumpSq     int
	TslotLines []int // not filled by ComputeFeatures; left nil
}

// columnHeights returns heights[x] = one plus the highest occupied row in
// column x, or 0 if the column is empty.
func columnHeights(board *Board) [BoardWidth]int {
	var h [BoardWidth]int
	for x := 0; x < BoardWidth; x++ {
		top := -1
		for y := BoardHeight - 1; y >= 0; y-- {
			if board[y][x] != CellEmpty {
				top = y
				break
			}
		}
		h[x] = top + 1
	}
	return h
}

func maxOf(h [BoardWidth]int) int {
	m := h[0]
	for _, v := range h[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// rowTransitions counts, per row across the whole board, index-adjacent
// occupied/empty changes with both out-of-board sides treated as occupied.
func rowTransitions(board *Board) int {
	t := 0
	for y := 0; y < BoardHeight; y++ {
		prev := 1
		for x := 0; x < BoardWidth; x++ {
			cur := 0
			if board[y][x] != CellEmpty {
				cur = 1
			}
			if cur != prev {
				t++
			}
			prev = cur
		}
		if prev == 0 {
			t++
		}
	}
	return t
}

// coveredCells walks each column bottom-to-top within its own height; once
// an empty cell (a hole) is seen, every subsequent occupied cell
// contributes min(6, height-y-1) to the covered count (and its square).
func coveredCells(board *Board, h [BoardWidth]int) (covered, coveredSq int) {
	for x := 0; x < BoardWidth; x++ {
		hole := false
		for y := 0; y < h[x]; y++ {
			if board[y][x] == CellEmpty {
				hole = true
			} else if hole {
				cells := h[x] - y - 1
				if cells > 6 {
					cells = 6
				}
				covered += cells
				coveredSq += cells * cells
			}
		}
	}
	return covered, coveredSq
}

// cavitiesAndOverhangs classifies each empty cell under the stack as either
// a cavity (no column-height support to either side) or an overhang (one
// side's next two columns step down enough to have been filled over it).
func cavitiesAndOverhangs(board *Board, h [BoardWidth]int) (cavities, overhangs int) {
	maxh := maxOf(h)
	for y := 0; y < maxh; y++ {
		for x := 0; x < BoardWidth; x++ {
			if y >= h[x] {
				continue
			}
			if board[y][x] != CellEmpty {
				continue
			}
			leftOverhang := x > 1 && h[x-1] <= y-1 && h[x-2] <= y
			rightOverhang := x < BoardWidth-2 && h[x+1] <= y-1 && h[x+2] <= y
			if leftOverhang || rightOverhang {
				overhangs++
			} else {
				cavities++
			}
		}
	}
	return cavities, overhangs
}

// wellColumnAndDepth picks the well column — iterating x=1..9 and replacing
// whenever h[x] <= h[well], so ties resolve to the rightmost minimum column,
// matching the iteration rule spec.md spells out literally even though its
// prose calls it "leftmost" — then counts rows from that column's height
// upward in which every other column's live board cell is occupied
// (holes, not just column height, break the well), capped at cap.
func wellColumnAndDepth(board *Board, h [BoardWidth]int, cap int) (well, depth int) {
	well = 0
	for x := 1; x < BoardWidth; x++ {
		if h[x] <= h[well] {
			well = x
		}
	}
	for y := h[well]; y < BoardHeight; y++ {
		solid := true
		for x := 0; x < BoardWidth; x++ {
			if x == well {
				continue
			}
			if board[y][x] == CellEmpty {
				solid = false
				break
			}
		}
		if !solid {
			break
		}
		depth++
	}
	if depth > cap {
		depth = cap
	}
	return well, depth
}

// bumpinessExcludingWell sums absolute height differences between
// consecutive non-well columns. The accumulators start at -1 and the
// result is the absolute value of each — this matches the source formula
// exactly (spec.md design note #1) and is not a bug to "fix".
func bumpinessExcludingWell(h [BoardWidth]int, well int) (sum, sumSq int) {
	sum, sumSq = -1, -1
	prev := 0
	if well == 0 {
		prev = 1
	}
	for i := 1; i < BoardWidth; i++ {
		if i == well {
			continue
		}
		d := h[prev] - h[i]
		if d < 0 {
			d = -d
		}
		sum += d
		sumSq += d * d
		prev = i
	}
	if sum < 0 {
		sum = -sum
	}
	if sumSq < 0 {
		sumSq = -sumSq
	}
	return sum, sumSq
}

// ComputeFeatures gathers the raw heuristic measurements for board. The
// T-slot chain is not scanned here (TslotLines stays nil); it is scored
// only inside EvaluateBoard.
func ComputeFeatures(board *Board, maxWellCap int) BoardFeatures {
	h := columnHeights(board)
	cavities, overhangs := cavitiesAndOverhangs(board, h)
	covered, coveredSq := coveredCells(board, h)
	well, wdepth := wellColumnAndDepth(board, h, maxWellCap)
	bump, bumpSq := bumpinessExcludingWell(h, well)

	return BoardFeatures{
		Heights:    h,
		MaxHeight:  maxOf(h),
		RowTrans:   rowTransitions(board),
		Covered:    covered,
		CoveredSq:  coveredSq,
		Cavities:   cavities,
		Overhangs:  overhangs,
		WellColumn: well,
		WellDepth:  wdepth,
		Bumpiness:  bump,
		BumpSq:     bumpSq,
	}
}

// EvaluateBoard scores a board in isolation (no placement-specific bonuses)
// under weights, including the always-clearing T-slot chain heuristic.
func EvaluateBoard(board *Board, weights Weights) int {
	h := columnHeights(board)
	cavities, overhangs := cavitiesAndOverhangs(board, h)
	covered, coveredSq := coveredCells(board, h)
	well, wdepth := wellColumnAndDepth(board, h, weights.MaxWellCap)
	bump, bumpSq := bumpinessExcludingWell(h, well)
	maxh := maxOf(h)

	score := 0
	score += weights.Height * maxh
	score += weights.Bumpiness * bump
	score += weights.BumpinessSq * bumpSq
	score += weights.RowTrans * rowTransitions(board)
	score += weights.Covered * covered
	score += weights.CoveredSq * coveredSq
	score += weights.CavityCells * cavities
	score += weights.CavityCellsSq * cavities * cavities
	score += weights.OverhangCells * overhangs
	score += weights.OverhangSq * overhangs * overhangs

	score += tslotChainScore(board, weights)

	top := maxh - 10
	if top < 0 {
		top = 0
	}
	quarter := maxh - 15
	if quarter < 0 {
		quarter = 0
	}
	score += weights.TopHalf * top
	score += weights.TopQuarter * quarter

	if wdepth > 0 {
		score += weights.WellDepth * wdepth
		score += weights.WellColumn[well]
	}

	return score
}

// tSlotOffsets are the four cells {center, left, up, right} simulated when
// testing an upward-oriented T placement, per spec.md section 4.6.
var tSlotOffsets = [4]Offset{{0, 0}, {-1, 0}, {0, 1}, {1, 0}}

func occupiedOrWall(board *Board, x, y int) bool {
	if !InBounds(x, y) {
		return true
	}
	return board[y][x] != CellEmpty
}

// isTslotCenter reports whether (cx, cy) is an empty cell with support
// directly below and at least 3 of its 4 diagonal corners occupied-or-wall.
func isTslotCenter(board *Board, cx, cy int) bool {
	if occupiedOrWall(board, cx, cy) {
		return false
	}
	if !occupiedOrWall(board, cx, cy-1) {
		return false
	}
	corners := 0
	for _, d := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if occupiedOrWall(board, cx+d[0], cy+d[1]) {
			corners++
		}
	}
	return corners >= 3
}

// simulateTslotLines returns how many full rows would result from filling
// the upward-T cells at (cx, cy) without committing the change.
func simulateTslotLines(board *Board, cx, cy int) int {
	tmp := *board
	for _, off := range tSlotOffsets {
		x, y := cx+off.DX, cy+off.DY
		if InBounds(x, y) {
			tmp[y][x] = Cell(T + 1)
		}
	}
	_, lines := ClearLines(&tmp)
	return lines
}

// tslotChainScore repeatedly finds a T-slot whose upward-T placement
// clears at least one line, commits it, and awards weights.Tslot[lines],
// restarting the scan each time — until no more T-slots produce a clear.
// This always commits the placement even though a real solver would only
// do so when that piece is actually chosen; it is an intentional heuristic
// approximation, not a bug (spec.md design note #3).
func tslotChainScore(board *Board, weights Weights) int {
	working := *board
	score := 0
	for {
		committed := false
		for y := 1; y < BoardHeight-1 && !committed; y++ {
			for x := 1; x < BoardWidth-1; x++ {
				if !isTslotCenter(&working, x, y) {
					continue
				}
				lines := simulateTslotLines(&working, x, y)
				if lines == 0 {
					continue
				}
				for _, off := range tSlotOffsets {
					cx, cy := x+off.DX, y+off.DY
					if InBounds(cx, cy) {
						working[cy][cx] = Cell(T + 1)
					}
				}
				working, _ = ClearLines(&working)
				if lines <= 3 {
					score += weights.Tslot[lines]
				}
				committed = true
				break
			}
		}
		if !committed {
			return score
		}
	}
}

// EvaluateLanding scores landing under weights: EvaluateBoard on the
// post-clear board plus every placement-specific bonus from spec.md
// section 4.6.
func EvaluateLanding(landing Landing, weights Weights) int {
	board := landing.BoardAfter
	score := EvaluateBoard(&board, weights)

	if landing.PerfectClear {
		score += weights.PerfectClear
	}

	if landing.BackToBack && isB2BQualifying(landing.Kind) {
		score += weights.B2BClear
	}

	switch landing.Kind {
	case Clear1:
		score += weights.Clear1
	case Clear2:
		score += weights.Clear2
	case Clear3:
		score += weights.Clear3
	case Clear4:
		score += weights.Clear4
	case Tspin1:
		score += weights.Tspin1
	case Tspin2:
		score += weights.Tspin2
	case Tspin3:
		score += weights.Tspin3
	case MiniTspin1:
		score += weights.MiniTspin1
	case MiniTspin2:
		score += weights.MiniTspin2
	}

	if landing.UsedTPiece && landing.LinesCleared == 0 && !isTspinKind(landing.Kind) {
		score += weights.WastedT
	}

	if landing.LinesCleared > 0 {
		idx := landing.Combo
		if idx > 11 {
			idx = 11
		}
		if idx < 0 {
			idx = 0
		}
		score += weights.ComboBonus * comboAttackTable[idx]
	}

	return score
}
