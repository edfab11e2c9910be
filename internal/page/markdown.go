package page

import (
	"sort"
	"strings"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
	"github.com/plumbergo/pdfplumb/internal/table"
	"github.com/plumbergo/pdfplumb/internal/words"
)

// MarkdownOptions controls ToMarkdown, the page-level convenience
// built on ExtractText/FindTables (a supplemented feature, following
// original_source's document-level markdown_conversion.rs down to the
// page granularity this Go build exposes things at).
type MarkdownOptions struct {
	WordOptions words.Options
	Table       table.Settings

	// HeadingSizeRatio is how much larger than the page's median word
	// font size a line's words must be, on average, to render as a
	// heading. No teacher/spec-given constant exists for this; 1.2 is
	// a conservative default (picked the same way TextOptions.LayoutColumnGap
	// was, as a documented assumption, not a derived one).
	HeadingSizeRatio float64
}

func NewMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{
		WordOptions:      words.NewOptions(),
		Table:            table.NewSettings(),
		HeadingSizeRatio: 1.2,
	}
}

// ToMarkdown renders the page as Markdown: lines whose words run
// noticeably larger than the page's median font size become ATX
// headings, the level fixed by how far their size ratio runs above
// HeadingSizeRatio (# at 2.5x that ratio or more, down to ###### just
// above it), tables found by FindTables become GFM pipe
// tables inserted where their bounding box falls in reading order, and
// everything else is plain text.
func (p *Page) ToMarkdown(opts MarkdownOptions) string {
	wordList := words.Extract(p.chars, opts.WordOptions)
	lines := linesFromWords(wordList)
	median := medianFontSize(p.chars)

	tables := p.FindTables(opts.Table)
	sort.Slice(tables, func(i, j int) bool { return tables[i].BBox.Top < tables[j].BBox.Top })

	var b strings.Builder
	tableIdx := 0
	for _, line := range lines {
		top := lineTop(line)
		for tableIdx < len(tables) && tables[tableIdx].BBox.Top < top {
			writeMarkdownTable(&b, tables[tableIdx])
			tableIdx++
		}
		writeMarkdownLine(&b, line, median, opts.HeadingSizeRatio)
	}
	for ; tableIdx < len(tables); tableIdx++ {
		writeMarkdownTable(&b, tables[tableIdx])
	}

	return strings.TrimRight(b.String(), "\n")
}

func lineTop(line []pdfmodel.Word) float64 {
	if len(line) == 0 {
		return 0
	}
	top := line[0].BBox.Top
	for _, w := range line[1:] {
		if w.BBox.Top < top {
			top = w.BBox.Top
		}
	}
	return top
}

func writeMarkdownLine(b *strings.Builder, line []pdfmodel.Word, median, ratio float64) {
	text := joinWords(line)
	if text == "" {
		return
	}
	level := headingLevel(line, median, ratio)
	if level > 0 {
		b.WriteString(strings.Repeat("#", level))
		b.WriteString(" ")
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

func joinWords(line []pdfmodel.Word) string {
	texts := make([]string, 0, len(line))
	for _, w := range line {
		if w.Text != "" {
			texts = append(texts, w.Text)
		}
	}
	return strings.Join(texts, " ")
}

// headingLevel returns 0 for body text, or 1-6 for a heading tier
// based on how far the line's average word size runs above median.
func headingLevel(line []pdfmodel.Word, median, ratio float64) int {
	if median <= 0 || len(line) == 0 {
		return 0
	}
	avg := averageWordSize(line)
	if avg <= median*ratio {
		return 0
	}
	scale := avg / median
	switch {
	case scale >= ratio*2.5:
		return 1
	case scale >= ratio*2.0:
		return 2
	case scale >= ratio*1.6:
		return 3
	case scale >= ratio*1.4:
		return 4
	case scale >= ratio*1.2:
		return 5
	default:
		return 6
	}
}

func averageWordSize(line []pdfmodel.Word) float64 {
	var sum float64
	var n int
	for _, w := range line {
		for _, ch := range w.Chars {
			sum += ch.Size
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func medianFontSize(chars []pdfmodel.Char) float64 {
	if len(chars) == 0 {
		return 0
	}
	sizes := make([]float64, len(chars))
	for i, ch := range chars {
		sizes[i] = ch.Size
	}
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}

func writeMarkdownTable(b *strings.Builder, t pdfmodel.Table) {
	if len(t.Rows) == 0 {
		return
	}
	for i, row := range t.Rows {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteString(" ")
			b.WriteString(cellText(cell))
			b.WriteString(" |")
		}
		b.WriteString("\n")
		if i == 0 {
			b.WriteString("|")
			for range row {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func cellText(cell pdfmodel.Cell) string {
	if cell.Text == nil {
		return ""
	}
	return strings.ReplaceAll(*cell.Text, "|", "\\|")
}

// StripMarkdown removes heading markers, emphasis markers, and
// horizontal rules from rendered Markdown, returning plain text.
func StripMarkdown(markdown string) string {
	var out []string
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" || trimmed == "***" || trimmed == "___" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "#")
		trimmed = strings.TrimSpace(trimmed)
		trimmed = stripEmphasis(trimmed)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}

func stripEmphasis(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if runes[i] == '*' || runes[i] == '_' {
			for i < len(runes) && (runes[i] == '*' || runes[i] == '_') {
				i++
			}
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// ExtractTitle returns the text of the first H1 heading in rendered
// Markdown, or "" if none is found.
func ExtractTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
			if title := strings.TrimSpace(rest); title != "" {
				return title
			}
		}
	}
	return ""
}
