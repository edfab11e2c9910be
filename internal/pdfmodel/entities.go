package pdfmodel

// Direction is the dominant text-flow direction of a run of glyphs.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
	DirectionTTB
	DirectionBTT
)

// Orientation classifies a Line per spec.md §3: horizontal iff
// top == bottom, vertical iff x0 == x1, else diagonal.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
	OrientationDiagonal
)

func OrientationOf(b BBox) Orientation {
	switch {
	case b.Top == b.Bottom:
		return OrientationHorizontal
	case b.X0 == b.X1:
		return OrientationVertical
	default:
		return OrientationDiagonal
	}
}

// Provenance tags where a derived Edge came from, for paint-order
// reasoning downstream (spec.md §5).
type Provenance int

const (
	ProvenanceLine Provenance = iota
	ProvenanceRectTop
	ProvenanceRectBottom
	ProvenanceRectLeft
	ProvenanceRectRight
	ProvenanceCurve
	ProvenanceStream
	ProvenanceExplicit
)

// Char is a single emitted glyph event (spec.md §3, §4.1).
type Char struct {
	Text       string
	BBox       BBox
	FontName   string
	Size       float64
	DocTop     float64
	Upright    bool
	Direction  Direction
	StrokeColor *Color
	FillColor   *Color
	CTM        Matrix
	CharCode   uint32
	MCID       *int
	StructTag  string
	Page       int
}

// Line is a drawn straight path segment (spec.md §3).
type Line struct {
	BBox        BBox
	LineWidth   float64
	Orientation Orientation
	StrokeColor Color
	Page        int
}

// Rect is a drawn or filled rectangle.
type Rect struct {
	BBox        BBox
	LineWidth   float64
	Stroke      bool
	Fill        bool
	StrokeColor Color
	FillColor   Color
	Page        int
}

// Curve is an ordered list of path points (Bezier control/endpoints).
type Curve struct {
	BBox        BBox
	Points      []Point
	Stroke      bool
	Fill        bool
	StrokeColor Color
	FillColor   Color
	Page        int
}

type Point struct{ X, Y float64 }

// Edge is an axis-aligned segment consumed by the table finder.
type Edge struct {
	BBox        BBox
	Orientation Orientation
	Provenance  Provenance
	Page        int
}

// Intersection is a point where a horizontal and vertical edge cross.
type Intersection struct {
	X, Y float64
}

// Cell is a candidate table cell, with text populated during
// finalization (spec.md §4.4 step 7).
type Cell struct {
	BBox BBox
	Text *string
}

// Table groups cells into a row-major/column-major grid.
type Table struct {
	BBox    BBox
	Cells   []Cell
	Rows    [][]Cell
	Columns [][]Cell
	Page    int
}

// Word is a maximal run of chars on one baseline (spec.md §4.5).
type Word struct {
	Text      string
	BBox      BBox
	DocTop    float64
	Direction Direction
	Chars     []Char
	Page      int
}

// Image is an XObject image event.
type Image struct {
	BBox             BBox
	Width, Height    float64 // rendered size in points
	SrcWidth         int     // declared pixel width
	SrcHeight        int     // declared pixel height
	BitsPerComponent int
	ColorSpace       string
	Name             string
	RawData          []byte
	Filters          []string
	Page             int
}

// SearchMatch is one regex/literal match against a page's extracted
// text (spec.md §4.6).
type SearchMatch struct {
	Text  string
	BBox  BBox
	Chars []Char
	Page  int
}

// PageGeometry carries a page's box geometry and rotation.
type PageGeometry struct {
	MediaBox    BBox
	CropBox     *BBox
	TrimBox     *BBox
	BleedBox    *BBox
	ArtBox      *BBox
	Rotation    int // 0, 90, 180, 270
	PageIndex   int // 0-based
	Width       float64
	Height      float64
}
