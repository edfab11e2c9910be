// Package words clusters a page's chars into words per spec.md §4.5.
package words

// Options is the full enumerated option set from spec.md §4.5.
type Options struct {
	XTolerance float64
	YTolerance float64

	KeepBlankChars bool
	UseTextFlow    bool

	HorizontalLTR bool
	VerticalTTB   bool

	ExtraAttrs []string

	SplitAtPunctuation bool
}

// NewOptions returns the spec.md §4.5 defaults.
func NewOptions() Options {
	return Options{
		XTolerance:    3.0,
		YTolerance:    3.0,
		HorizontalLTR: true,
		VerticalTTB:   true,
	}
}
