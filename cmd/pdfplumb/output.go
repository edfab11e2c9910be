package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/plumbergo/pdfplumb/internal/annot"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// Format selects an output renderer (spec.md §6's --format flag).
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func directionName(d pdfmodel.Direction) string {
	switch d {
	case pdfmodel.DirectionRTL:
		return "rtl"
	case pdfmodel.DirectionTTB:
		return "ttb"
	case pdfmodel.DirectionBTT:
		return "btt"
	default:
		return "ltr"
	}
}

// charRecord mirrors spec.md §6's Char JSON shape exactly.
type charRecord struct {
	Page      int     `json:"page"`
	Text      string  `json:"text"`
	X0        float64 `json:"x0"`
	Top       float64 `json:"top"`
	X1        float64 `json:"x1"`
	Bottom    float64 `json:"bottom"`
	FontName  string  `json:"fontname"`
	Size      float64 `json:"size"`
	DocTop    float64 `json:"doctop"`
	Upright   bool    `json:"upright"`
	Direction string  `json:"direction"`
}

func toCharRecord(c pdfmodel.Char) charRecord {
	return charRecord{
		Page: c.Page, Text: c.Text,
		X0: c.BBox.X0, Top: c.BBox.Top, X1: c.BBox.X1, Bottom: c.BBox.Bottom,
		FontName: c.FontName, Size: c.Size, DocTop: c.DocTop,
		Upright: c.Upright, Direction: directionName(c.Direction),
	}
}

// wordRecord mirrors spec.md §6's Word JSON shape exactly.
type wordRecord struct {
	Page      int     `json:"page"`
	Text      string  `json:"text"`
	X0        float64 `json:"x0"`
	Top       float64 `json:"top"`
	X1        float64 `json:"x1"`
	Bottom    float64 `json:"bottom"`
	DocTop    float64 `json:"doctop"`
	Direction string  `json:"direction"`
}

func toWordRecord(w pdfmodel.Word) wordRecord {
	return wordRecord{
		Page: w.Page, Text: w.Text,
		X0: w.BBox.X0, Top: w.BBox.Top, X1: w.BBox.X1, Bottom: w.BBox.Bottom,
		DocTop: w.DocTop, Direction: directionName(w.Direction),
	}
}

// tableRecord mirrors spec.md §6's Table JSON shape exactly.
type tableRecord struct {
	Page int        `json:"page"`
	BBox bboxRecord `json:"bbox"`
	Rows [][]*string `json:"rows"`
}

type bboxRecord struct {
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	X1     float64 `json:"x1"`
	Bottom float64 `json:"bottom"`
}

func toTableRecord(t pdfmodel.Table) tableRecord {
	rows := make([][]*string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]*string, len(row))
		for j, cell := range row {
			cells[j] = cell.Text
		}
		rows[i] = cells
	}
	return tableRecord{
		Page: t.Page,
		BBox: bboxRecord{X0: t.BBox.X0, Top: t.BBox.Top, X1: t.BBox.X1, Bottom: t.BBox.Bottom},
		Rows: rows,
	}
}

// searchMatchRecord mirrors spec.md §6's SearchMatch JSON shape exactly.
type searchMatchRecord struct {
	Page        int     `json:"page"`
	Text        string  `json:"text"`
	X0          float64 `json:"x0"`
	Top         float64 `json:"top"`
	X1          float64 `json:"x1"`
	Bottom      float64 `json:"bottom"`
	CharIndices []int   `json:"char_indices"`
}

// charIndices locates a search match's spanned chars within the full
// page char slice by contiguous value match, returning their 0-based
// indices for the char_indices JSON field.
func charIndices(pageChars []pdfmodel.Char, matchChars []pdfmodel.Char) []int {
	if len(matchChars) == 0 || len(pageChars) < len(matchChars) {
		return nil
	}
	for start := 0; start+len(matchChars) <= len(pageChars); start++ {
		match := true
		for i, mc := range matchChars {
			pc := pageChars[start+i]
			if pc.Text != mc.Text || pc.BBox != mc.BBox {
				match = false
				break
			}
		}
		if match {
			indices := make([]int, len(matchChars))
			for i := range matchChars {
				indices[i] = start + i
			}
			return indices
		}
	}
	return nil
}

func toSearchMatchRecord(m pdfmodel.SearchMatch, indices []int) searchMatchRecord {
	return searchMatchRecord{
		Page: m.Page, Text: m.Text,
		X0: m.BBox.X0, Top: m.BBox.Top, X1: m.BBox.X1, Bottom: m.BBox.Bottom,
		CharIndices: indices,
	}
}

// imageRecord mirrors spec.md §6's Image JSON shape exactly.
type imageRecord struct {
	Name             string  `json:"name"`
	X0               float64 `json:"x0"`
	Top              float64 `json:"top"`
	X1               float64 `json:"x1"`
	Bottom           float64 `json:"bottom"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	SrcWidth         int     `json:"src_width"`
	SrcHeight        int     `json:"src_height"`
	BitsPerComponent int     `json:"bits_per_component"`
	ColorSpace       string  `json:"color_space"`
}

func toImageRecord(img pdfmodel.Image) imageRecord {
	return imageRecord{
		Name: img.Name,
		X0:   img.BBox.X0, Top: img.BBox.Top, X1: img.BBox.X1, Bottom: img.BBox.Bottom,
		Width: img.Width, Height: img.Height,
		SrcWidth: img.SrcWidth, SrcHeight: img.SrcHeight,
		BitsPerComponent: img.BitsPerComponent, ColorSpace: img.ColorSpace,
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCharsText(w io.Writer, chars []pdfmodel.Char) {
	for _, c := range chars {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%.2f\n",
			round2(c.BBox.X0), round2(c.BBox.Top), round2(c.BBox.X1), round2(c.BBox.Bottom),
			c.FontName, c.Text, round2(c.Size))
	}
}

func writeCharsCSV(w io.Writer, chars []pdfmodel.Char) {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	cw.Write([]string{"page", "text", "x0", "top", "x1", "bottom", "fontname", "size"})
	for _, c := range chars {
		cw.Write([]string{
			fmt.Sprint(c.Page), c.Text,
			fmt.Sprintf("%.2f", round2(c.BBox.X0)), fmt.Sprintf("%.2f", round2(c.BBox.Top)),
			fmt.Sprintf("%.2f", round2(c.BBox.X1)), fmt.Sprintf("%.2f", round2(c.BBox.Bottom)),
			c.FontName, fmt.Sprintf("%.2f", round2(c.Size)),
		})
	}
}

func writeWordsText(w io.Writer, words []pdfmodel.Word) {
	for _, word := range words {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			round2(word.BBox.X0), round2(word.BBox.Top), round2(word.BBox.X1), round2(word.BBox.Bottom), word.Text)
	}
}

func writeWordsCSV(w io.Writer, words []pdfmodel.Word) {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	cw.Write([]string{"page", "text", "x0", "top", "x1", "bottom"})
	for _, word := range words {
		cw.Write([]string{
			fmt.Sprint(word.Page), word.Text,
			fmt.Sprintf("%.2f", round2(word.BBox.X0)), fmt.Sprintf("%.2f", round2(word.BBox.Top)),
			fmt.Sprintf("%.2f", round2(word.BBox.X1)), fmt.Sprintf("%.2f", round2(word.BBox.Bottom)),
		})
	}
}

func writeTablesText(w io.Writer, tables []pdfmodel.Table) {
	for i, t := range tables {
		fmt.Fprintf(w, "table %d @ (%.2f,%.2f)-(%.2f,%.2f)\n", i+1,
			round2(t.BBox.X0), round2(t.BBox.Top), round2(t.BBox.X1), round2(t.BBox.Bottom))
		for _, row := range t.Rows {
			for j, cell := range row {
				if j > 0 {
					fmt.Fprint(w, " | ")
				}
				if cell.Text != nil {
					fmt.Fprint(w, *cell.Text)
				}
			}
			fmt.Fprintln(w)
		}
	}
}

func writeImagesText(w io.Writer, images []pdfmodel.Image) {
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%dx%d\n",
			img.Name, round2(img.BBox.X0), round2(img.BBox.Top), round2(img.BBox.X1), round2(img.BBox.Bottom),
			img.SrcWidth, img.SrcHeight)
	}
}

func writeBookmarksText(w io.Writer, bookmarks []annot.Bookmark, depth int) {
	for _, b := range bookmarks {
		fmt.Fprintf(w, "%s- %s (p.%d)\n", indent(depth), b.Title, b.Page)
		writeBookmarksText(w, b.Children, depth+1)
	}
}

func indent(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}

func writeLinksText(w io.Writer, links []annot.Hyperlink) {
	for _, l := range links {
		fmt.Fprintf(w, "p.%d (%.2f,%.2f)-(%.2f,%.2f)\t%s\n",
			l.Page, round2(l.BBox.X0), round2(l.BBox.Top), round2(l.BBox.X1), round2(l.BBox.Bottom), l.URI)
	}
}

func writeFormFieldsText(w io.Writer, fields []annot.FormField) {
	for _, f := range fields {
		fmt.Fprintf(w, "p.%d\t%s\t%s\t%s\n", f.Page, f.Type, f.Name, f.Value)
	}
}

func writeValidationText(w io.Writer, issues []pdfmodel.ValidationIssue) {
	for _, i := range issues {
		fmt.Fprintf(w, "[%s] %s p.%d: %s\n", i.Severity, i.Code, i.Page, i.Message)
	}
}
