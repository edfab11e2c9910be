package content

import (
	"github.com/plumbergo/pdfplumb/internal/encoding"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// showText implements Tj/TJ glyph emission: steps 1-6 of spec.md §4.1
// (decode codes, resolve text, compute glyph bbox from the font matrix
// and CTM, advance the text matrix, repeat). Grounded on
// pkg/gopdf/text_operators.go renderText, with Cairo painting replaced
// by Char event emission and glyph outlines replaced by a metrics-only
// advance/bbox model (no embedded glyph-outline rasterization).
//
// A TJ array element that is a number is a position adjustment in
// thousandths of an em, scaled by the font size and horizontal scaling
// and applied directly to the text matrix
// without inserting a synthetic space character, matching the PDF
// spec's "not a space" semantics for TJ gaps (spec.md §4.1 edge case).
func (ip *Interpreter) showText(text string, array []operand) {
	font := ip.Text.Font
	if font == nil {
		ip.collector.Warn("font", "Tj/TJ with no font set")
		return
	}

	emitRun := func(s string) {
		ip.emitCodes(decodeCodes(s, font), font)
	}

	if array != nil {
		for _, item := range array {
			switch v := item.(type) {
			case string:
				emitRun(v)
			case float64:
				ip.adjustTextMatrix(-v / 1000.0 * ip.Text.FontSize * ip.Text.HorizontalScaling / 100.0)
			}
		}
		return
	}
	emitRun(text)
}

// decodeCodes splits a raw content-stream string into per-glyph
// character codes. Simple fonts consume one byte per code; Type0 CID
// fonts consume one or two bytes depending on the CJK lead-byte rule
// when a predefined CMap backs the font, or two bytes uniformly for
// Identity-H/V and embedded CMaps (the common case).
func decodeCodes(s string, font *ResolvedFont) []uint32 {
	raw := []byte(s)
	var codes []uint32
	if font.Kind == encoding.FontType0 {
		i := 0
		for i < len(raw) {
			if font.CJK != encoding.CJKNone && !font.CIDIdentity {
				if leadByteIsDoubleByte(font, raw[i]) && i+1 < len(raw) {
					codes = append(codes, uint32(raw[i])<<8|uint32(raw[i+1]))
					i += 2
					continue
				}
				codes = append(codes, uint32(raw[i]))
				i++
				continue
			}
			if i+1 < len(raw) {
				codes = append(codes, uint32(raw[i])<<8|uint32(raw[i+1]))
				i += 2
			} else {
				codes = append(codes, uint32(raw[i]))
				i++
			}
		}
		return codes
	}
	for _, b := range raw {
		codes = append(codes, uint32(b))
	}
	return codes
}

func leadByteIsDoubleByte(font *ResolvedFont, lead byte) bool {
	return encoding.LeadByteIsDoubleByte(font.CJK, lead)
}

// emitCodes advances the text matrix per code and emits a Char for
// each resolved glyph, following the PDF spec §9.4.3 displacement
// formula: tx = ((w0 - Tj/1000)*Tfs + Tc + Tw) * Th.
func (ip *Interpreter) emitCodes(codes []uint32, font *ResolvedFont) {
	ts := ip.Text
	gs := ip.Graphics.Current()
	hscale := ts.HorizontalScaling / 100.0

	for _, code := range codes {
		text, ok := font.Resolve(code)
		if !ok {
			ip.collector.Warn("encoding", "unresolved glyph code in font "+font.Name)
		}
		w0 := font.GetWidth(code) / 1000.0

		trm := pdfmodel.Matrix{A: ts.FontSize * hscale, D: ts.FontSize, F: ts.Rise}.Multiply(ts.TextMatrix).Multiply(gs.CTM)

		x0, y0 := trm.Transform(0, 0)
		x1, y1 := trm.Transform(w0, 1)
		bbox := pdfmodel.BBox{
			X0: minF(x0, x1), X1: maxF(x0, x1),
			Top: ip.pageHeight - maxF(y0, y1), Bottom: ip.pageHeight - minF(y0, y1),
		}

		var mcid *int
		var tag string
		if t, id, ok := ip.MarkedContent.Current(); ok {
			tag, mcid = t, id
		}

		// One Char per code regardless of resolved text length: the
		// bbox and metrics belong to the code, not the codepoint, so a
		// ToUnicode entry legally mapping a code to an empty string
		// still produces a Char (spec.md §4.2's Result contract).
		ip.collector.AddChar(pdfmodel.Char{
			Text:        text,
			BBox:        bbox,
			FontName:    font.Name,
			Size:        ts.FontSize,
			DocTop:      bbox.Top,
			Upright:     gs.CTM.PreservesVerticalAxis() && ts.TextMatrix.PreservesVerticalAxis(),
			CTM:         gs.CTM,
			CharCode:    code,
			MCID:        mcid,
			StructTag:   tag,
			FillColor:   &gs.FillColor,
			StrokeColor: &gs.StrokeColor,
			Page:        ip.pageNum,
		})

		spacing := ts.CharSpacing
		if code == ' ' && font.Kind != encoding.FontType0 {
			spacing += ts.WordSpacing
		}
		tx := (w0*ts.FontSize + spacing) * hscale
		ip.adjustTextMatrix(tx)
	}
}

func (ip *Interpreter) adjustTextMatrix(tx float64) {
	ip.Text.TextMatrix = pdfmodel.Translation(tx, 0).Multiply(ip.Text.TextMatrix)
}
