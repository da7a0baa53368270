package tetris

// comboAttackTable maps min(combo, 11) to an attack bonus. Index 0 and 1
// both contribute nothing; the table tops out at combo 11+.
var comboAttackTable = [12]int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5}

func attackBase(kind ClearKind) int {
	switch kind {
	case Clear1:
		return 0
	case Clear2:
		return 1
	case Clear3:
		return 2
	case Clear4:
		return 4
	case Tspin1:
		return 2
	case Tspin2:
		return 4
	case Tspin3:
		return 6
	case MiniTspin1:
		return 0
	case MiniTspin2:
		return 1
	default:
		return 0
	}
}

// ComputeAttack returns the garbage-send count for a single placement, per
// spec.md section 4.7: a per-kind base, +1 for a B2B-qualifying clear
// continuing a back-to-back chain, a combo bonus once any lines clear, and
// +10 for a perfect clear. combo is the post-placement combo count (the
// same value stored in Landing.Combo), not the count before this
// placement — that is what makes the second consecutive clear in a chain,
// not the first, the one that starts awarding combo attack.
func ComputeAttack(kind ClearKind, linesCleared, combo int, backToBack, perfectClear bool) int {
	attack := attackBase(kind)
	if backToBack && isB2BQualifying(kind) {
		attack++
	}
	if linesCleared > 0 {
		idx := combo
		if idx > 11 {
			idx = 11
		}
		if idx < 0 {
			idx = 0
		}
		attack += comboAttackTable[idx]
	}
	if perfectClear {
		attack += 10
	}
	return attack
}
