// Package pdfplumb is the thin library facade over internal/document
// and internal/page: it re-exports the types and constructors external
// callers need without requiring them to import anything under
// internal/, which the Go toolchain otherwise hides from them.
package pdfplumb

import (
	"github.com/plumbergo/pdfplumb/internal/annot"
	"github.com/plumbergo/pdfplumb/internal/document"
	"github.com/plumbergo/pdfplumb/internal/page"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
	"github.com/plumbergo/pdfplumb/internal/table"
	"github.com/plumbergo/pdfplumb/internal/words"
)

type (
	Document = document.Document
	OpenOptions = document.OpenOptions
	RepairOptions = document.RepairOptions
	RepairEntry = document.RepairEntry
	UnicodeNormForm = document.UnicodeNormForm

	Page         = page.Page
	TextOptions  = page.TextOptions
	SearchOptions = page.SearchOptions
	MarkdownOptions = page.MarkdownOptions
	DedupeOptions = page.DedupeOptions

	TableSettings = table.Settings
	TableStrategy = table.Strategy

	WordOptions = words.Options

	Char        = pdfmodel.Char
	Line        = pdfmodel.Line
	Rect        = pdfmodel.Rect
	Curve       = pdfmodel.Curve
	Edge        = pdfmodel.Edge
	Word        = pdfmodel.Word
	Table       = pdfmodel.Table
	Cell        = pdfmodel.Cell
	Image       = pdfmodel.Image
	SearchMatch = pdfmodel.SearchMatch
	BBox        = pdfmodel.BBox
	Color       = pdfmodel.Color
	Warning     = pdfmodel.Warning
	ValidationIssue = pdfmodel.ValidationIssue

	Hyperlink = annot.Hyperlink
	Bookmark  = annot.Bookmark
	FormField = annot.FormField
	Signature = annot.Signature
)

const (
	UnicodeNormNone = document.UnicodeNormNone
	UnicodeNormNFC  = document.UnicodeNormNFC
	UnicodeNormNFD  = document.UnicodeNormNFD
	UnicodeNormNFKC = document.UnicodeNormNFKC
	UnicodeNormNFKD = document.UnicodeNormNFKD

	StrategyLattice       = table.StrategyLattice
	StrategyStream        = table.StrategyStream
	StrategyLatticeStrict = table.StrategyLatticeStrict
	StrategyExplicit      = table.StrategyExplicit
)

// Open opens a PDF from a file path (spec.md §6 PDF input).
func Open(path string, opts OpenOptions) (*Document, error) {
	return document.Open(path, opts)
}

// OpenReader opens a PDF already loaded into memory.
func OpenReader(data []byte, opts OpenOptions) (*Document, error) {
	return document.OpenReader(data, opts)
}

// NewTextOptions returns extract_text's spec.md §4.6 defaults.
func NewTextOptions() TextOptions { return page.NewTextOptions() }

// NewSearchOptions returns search's spec.md §4.6 defaults.
func NewSearchOptions() SearchOptions { return page.NewSearchOptions() }

// NewMarkdownOptions returns ToMarkdown's defaults.
func NewMarkdownOptions() MarkdownOptions { return page.NewMarkdownOptions() }

// NewDedupeOptions returns dedupe_chars' defaults.
func NewDedupeOptions() DedupeOptions { return page.NewDedupeOptions() }

// NewTableSettings returns find_tables' spec.md §4.4 defaults.
func NewTableSettings() TableSettings { return table.NewSettings() }

// NewWordOptions returns extract_words' spec.md §4.5 defaults.
func NewWordOptions() WordOptions { return words.NewOptions() }

// ParsePageRange parses a 1-indexed --pages spec (e.g. "1,3-5") into
// deduplicated, sorted 0-indexed page numbers (spec.md §6).
func ParsePageRange(spec string, pageCount int) ([]int, error) {
	return document.ParsePageRange(spec, pageCount)
}

// DedupeChars removes duplicate overlapping characters from a page's
// char slice (a supplemented feature; see internal/page/dedupe.go).
func DedupeChars(chars []Char, opts DedupeOptions) []Char {
	return page.DedupeChars(chars, opts)
}

// StripMarkdown removes Markdown formatting from rendered text.
func StripMarkdown(markdown string) string { return page.StripMarkdown(markdown) }

// ExtractTitle returns the first H1 heading's text from rendered
// Markdown, or "" if none is present.
func ExtractTitle(markdown string) string { return page.ExtractTitle(markdown) }
