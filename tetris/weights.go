package tetris

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WellColumnBonus holds the per-column bonus applied when that column is
// chosen as the well (spec.md's well_column[well] term), indexed 0..9.
type WellColumnBonus [BoardWidth]int

// TslotBonus holds the per-line-count reward for a committed T-slot clear
// during the evaluator's T-slot chain scan, indexed directly by lines
// cleared (0..3); index 0 is never actually added since a T-slot that
// clears nothing is never committed.
type TslotBonus [4]int

// Weights is the full, tunable coefficient set for EvaluateBoard and
// EvaluateLanding. The zero value is meaningless; use DefaultWeights or
// Load a tuned set from disk.
type Weights struct {
	Height        int `json:"height"`
	Bumpiness     int `json:"bumpiness"`
	BumpinessSq   int `json:"bumpiness_sq"`
	RowTrans      int `json:"row_trans"`
	Covered       int `json:"covered"`
	CoveredSq     int `json:"covered_sq"`
	CavityCells   int `json:"cavity_cells"`
	CavityCellsSq int `json:"cavity_cells_sq"`
	OverhangCells int `json:"overhang_cells"`
	OverhangSq    int `json:"overhang_cells_sq"`
	TopHalf       int `json:"top_half"`
	TopQuarter    int `json:"top_quarter"`
	WellDepth     int `json:"well_depth"`
	MaxWellCap    int `json:"max_well_cap"`

	B2BClear     int `json:"b2b_clear"`
	Tspin1       int `json:"tspin1"`
	Tspin2       int `json:"tspin2"`
	Tspin3       int `json:"tspin3"`
	MiniTspin1   int `json:"mini_tspin1"`
	MiniTspin2   int `json:"mini_tspin2"`
	PerfectClear int `json:"perfect_clear"`
	WastedT      int `json:"wasted_t"`
	ComboBonus   int `json:"combo_bonus"`
	Clear1       int `json:"clear1"`
	Clear2       int `json:"clear2"`
	Clear3       int `json:"clear3"`
	Clear4       int `json:"clear4"`

	WellColumn WellColumnBonus `json:"well_column"`
	Tslot      TslotBonus      `json:"tslot"`
}

// DefaultWeights returns the reference weight set from spec.md section 4.6,
// tuned by the same Cold-Clear-style lineage this evaluator follows.
func DefaultWeights() Weights {
	return Weights{
		Height:        -39,
		Bumpiness:     -24,
		BumpinessSq:   -7,
		RowTrans:      -5,
		Covered:       -17,
		CoveredSq:     -1,
		CavityCells:   -173,
		CavityCellsSq: -3,
		OverhangCells: -34,
		OverhangSq:    -1,
		TopHalf:       -150,
		TopQuarter:    -511,
		WellDepth:     57,
		MaxWellCap:    17,

		B2BClear:     104,
		Tspin1:       121,
		Tspin2:       410,
		Tspin3:       602,
		MiniTspin1:   -158,
		MiniTspin2:   -93,
		PerfectClear: 999,
		WastedT:      -152,
		ComboBonus:   150,
		Clear1:       -143,
		Clear2:       -100,
		Clear3:       -58,
		Clear4:       390,

		WellColumn: WellColumnBonus{20, 23, 20, 50, 59, 21, 59, 10, -10, 24},
		Tslot:      TslotBonus{8, 148, 192, 407},
	}
}

// WeightsStore manages loading and saving a tuned Weights set to disk, in
// the same Load/LoadFrom/Save shape used elsewhere in this codebase for
// user-facing configuration. This is an ambient configuration concern, not
// game-state persistence: it holds evaluator coefficients, never a Board
// or GameState.
type WeightsStore struct {
	path    string
	Weights Weights
}

// LoadWeights reads a tuned weight set from the default location
// (~/.tetriscore/weights.json). A missing file yields DefaultWeights.
func LoadWeights() (*WeightsStore, error) {
	return LoadWeightsFrom("")
}

// LoadWeightsFrom reads a tuned weight set from a specific path. If path is
// empty, uses the default location.
func LoadWeightsFrom(path string) (*WeightsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &WeightsStore{Weights: DefaultWeights()}, err
		}
		path = filepath.Join(home, ".tetriscore", "weights.json")
	}

	s := &WeightsStore{path: path, Weights: DefaultWeights()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Weights); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the weight set to disk as indented JSON.
func (s *WeightsStore) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Weights, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
