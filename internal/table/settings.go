// Package table implements the lattice/stream table finder described
// in spec.md §4.4: edges in, cells and tables out.
package table

// Strategy selects how candidate edges are obtained before the shared
// snap/join/filter/intersect/cell/table pipeline runs.
type Strategy int

const (
	StrategyLattice Strategy = iota
	StrategyStream
	StrategyLatticeStrict
	StrategyExplicit
)

// Line is a caller-supplied explicit edge (explicit_vertical_lines /
// explicit_horizontal_lines).
type Line struct {
	X0, Top, X1, Bottom float64
}

// Settings is the full enumerated option set from spec.md §4.4.
type Settings struct {
	Strategy Strategy

	SnapTolerance   float64
	SnapXTolerance  float64
	SnapYTolerance  float64

	JoinTolerance  float64
	JoinXTolerance float64
	JoinYTolerance float64

	EdgeMinLength float64

	MinWordsVertical   int
	MinWordsHorizontal int

	TextTolerance  float64
	TextXTolerance float64
	TextYTolerance float64

	IntersectionTolerance  float64
	IntersectionXTolerance float64
	IntersectionYTolerance float64

	ExplicitVerticalLines   []Line
	ExplicitHorizontalLines []Line
}

// NewSettings returns the spec.md §4.4 defaults, with per-axis
// tolerances defaulted from their shared base value.
func NewSettings() Settings {
	s := Settings{
		Strategy:               StrategyLattice,
		SnapTolerance:          3.0,
		JoinTolerance:          3.0,
		EdgeMinLength:          3.0,
		MinWordsVertical:       3,
		MinWordsHorizontal:     1,
		TextTolerance:          3.0,
		IntersectionTolerance:  3.0,
	}
	s.applyDefaults()
	return s
}

// applyDefaults fills unset per-axis tolerances from their shared
// base value; call after any caller mutation that may have left a
// per-axis field at its zero value.
func (s *Settings) applyDefaults() {
	if s.SnapXTolerance == 0 {
		s.SnapXTolerance = s.SnapTolerance
	}
	if s.SnapYTolerance == 0 {
		s.SnapYTolerance = s.SnapTolerance
	}
	if s.JoinXTolerance == 0 {
		s.JoinXTolerance = s.JoinTolerance
	}
	if s.JoinYTolerance == 0 {
		s.JoinYTolerance = s.JoinTolerance
	}
	if s.TextXTolerance == 0 {
		s.TextXTolerance = s.TextTolerance
	}
	if s.TextYTolerance == 0 {
		s.TextYTolerance = s.TextTolerance
	}
	if s.IntersectionXTolerance == 0 {
		s.IntersectionXTolerance = s.IntersectionTolerance
	}
	if s.IntersectionYTolerance == 0 {
		s.IntersectionYTolerance = s.IntersectionTolerance
	}
}
