package content

import (
	"github.com/plumbergo/pdfplumb/internal/encoding"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// ResolvedFont aliases encoding.Font, the extraction-time font view
// produced by the document loader's font-dictionary resolution pass.
type ResolvedFont = encoding.Font

// GraphicsState is the PDF graphics state (PDF spec §8.4), tracked
// across q/Q per spec.md §4.1. Grounded on the teacher's
// pkg/gopdf/graphics_state.go GraphicsState, trimmed to the fields
// extraction actually reads (no blend modes, soft masks, or transparency
// groups — those affect painting, not geometry/text events).
type GraphicsState struct {
	CTM         pdfmodel.Matrix
	StrokeColor pdfmodel.Color
	FillColor   pdfmodel.Color
	LineWidth   float64
	ClipActive  bool
}

func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM:         pdfmodel.Identity(),
		StrokeColor: pdfmodel.NewGray(0),
		FillColor:   pdfmodel.NewGray(0),
		LineWidth:   1.0,
	}
}

func (gs *GraphicsState) Clone() *GraphicsState {
	clone := *gs
	return &clone
}

// GraphicsStateStack implements q/Q. Grounded on
// pkg/gopdf/graphics_state.go GraphicsStateStack: Pop never empties the
// stack below one entry, matching the teacher's "keep at least one
// state" guard, which absorbs unbalanced Q operators per spec.md §4.1's
// malformed-operator tolerance rule.
type GraphicsStateStack struct {
	stack []*GraphicsState
}

func NewGraphicsStateStack() *GraphicsStateStack {
	return &GraphicsStateStack{stack: []*GraphicsState{NewGraphicsState()}}
}

func (s *GraphicsStateStack) Current() *GraphicsState {
	return s.stack[len(s.stack)-1]
}

func (s *GraphicsStateStack) Push() {
	s.stack = append(s.stack, s.Current().Clone())
}

func (s *GraphicsStateStack) Pop() {
	if len(s.stack) <= 1 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *GraphicsStateStack) Depth() int { return len(s.stack) }

// TextState is the text object state (PDF spec §9.3), reset at each BT.
// Grounded on pkg/gopdf/text_operators.go TextState.
type TextState struct {
	TextMatrix        pdfmodel.Matrix
	TextLineMatrix    pdfmodel.Matrix
	CharSpacing       float64
	WordSpacing       float64
	HorizontalScaling float64 // percent, 100 = no scaling
	Leading           float64
	Font              *ResolvedFont
	FontSize          float64
	RenderMode        int
	Rise              float64
}

func NewTextState() *TextState {
	return &TextState{
		TextMatrix:        pdfmodel.Identity(),
		TextLineMatrix:    pdfmodel.Identity(),
		HorizontalScaling: 100,
		FontSize:          12,
	}
}

func (ts *TextState) Clone() *TextState {
	clone := *ts
	return &clone
}

// MarkedContentStack tracks BDC/BMC/EMC nesting so emitted Chars can
// carry an MCID for downstream struct-tree/accessibility consumers
// (spec.md §9 supplemented structure-tag feature).
type MarkedContentStack struct {
	frames []markedFrame
}

type markedFrame struct {
	tag  string
	mcid *int
}

func (m *MarkedContentStack) Push(tag string, mcid *int) {
	m.frames = append(m.frames, markedFrame{tag: tag, mcid: mcid})
}

func (m *MarkedContentStack) Pop() {
	if len(m.frames) > 0 {
		m.frames = m.frames[:len(m.frames)-1]
	}
}

func (m *MarkedContentStack) Current() (tag string, mcid *int, ok bool) {
	if len(m.frames) == 0 {
		return "", nil, false
	}
	f := m.frames[len(m.frames)-1]
	return f.tag, f.mcid, true
}
