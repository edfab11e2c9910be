package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/plumbergo/pdfplumb/internal/document"
	"github.com/plumbergo/pdfplumb/internal/page"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
	"github.com/plumbergo/pdfplumb/internal/svgdebug"
	"github.com/plumbergo/pdfplumb/internal/table"
	"github.com/plumbergo/pdfplumb/internal/words"
)

var commands = map[string]bool{
	"text": true, "chars": true, "words": true, "tables": true,
	"images": true, "annots": true, "bookmarks": true, "links": true,
	"search": true, "info": true, "forms": true, "debug": true, "validate": true,
}

func dispatch(command, path string, opts cliOptions) error {
	if !commands[command] {
		return fmt.Errorf("unknown command %q", command)
	}

	openOpts := document.OpenOptions{
		Password:    opts.password,
		UnicodeNorm: unicodeNormFrom(opts.unicodeNorm),
	}
	if opts.repair {
		openOpts.Repair = &document.RepairOptions{
			RebuildXref:      true,
			FixStreamLengths: true,
		}
	}

	doc, err := document.Open(path, openOpts)
	if err != nil {
		return err
	}
	defer doc.Close()

	pageNums, err := selectPages(doc, opts.pages)
	if err != nil {
		return err
	}

	switch command {
	case "info":
		return runInfo(doc)
	case "bookmarks":
		return runBookmarks(doc, opts)
	case "validate":
		return runValidate(doc, opts)
	}

	for _, n := range pageNums {
		pg, err := doc.Page(n)
		if err != nil {
			return err
		}
		if err := runPageCommand(command, doc, pg, opts); err != nil {
			return err
		}
	}
	return nil
}

func selectPages(doc *document.Document, spec string) ([]int, error) {
	if spec == "" {
		nums := make([]int, doc.PageCount())
		for i := range nums {
			nums[i] = i + 1
		}
		return nums, nil
	}
	zeroIndexed, err := document.ParsePageRange(spec, doc.PageCount())
	if err != nil {
		return nil, err
	}
	nums := make([]int, len(zeroIndexed))
	for i, z := range zeroIndexed {
		nums[i] = z + 1
	}
	return nums, nil
}

func unicodeNormFrom(s string) document.UnicodeNormForm {
	switch strings.ToLower(s) {
	case "nfc":
		return document.UnicodeNormNFC
	case "nfd":
		return document.UnicodeNormNFD
	case "nfkc":
		return document.UnicodeNormNFKC
	case "nfkd":
		return document.UnicodeNormNFKD
	default:
		return document.UnicodeNormNone
	}
}

func tableSettingsFrom(opts cliOptions) table.Settings {
	s := table.NewSettings()
	if strings.ToLower(opts.strategy) == "stream" {
		s.Strategy = table.StrategyStream
	}
	s.SnapTolerance = opts.snapTol
	s.JoinTolerance = opts.joinTol
	s.TextTolerance = opts.textTol
	return s
}

func wordOptionsFrom(opts cliOptions) words.Options {
	w := words.NewOptions()
	w.XTolerance = opts.xTol
	w.YTolerance = opts.yTol
	return w
}

func runInfo(doc *document.Document) error {
	fmt.Printf("pages: %d\n", doc.PageCount())
	for _, entry := range doc.RepairLog() {
		fmt.Printf("repair: [%s] %s\n", entry.Code, entry.Message)
	}
	return nil
}

func runBookmarks(doc *document.Document, opts cliOptions) error {
	bookmarks := doc.Bookmarks()
	if opts.format == FormatJSON {
		return writeJSON(os.Stdout, bookmarks)
	}
	writeBookmarksText(os.Stdout, bookmarks, 0)
	return nil
}

func runValidate(doc *document.Document, opts cliOptions) error {
	issues := doc.Validate()
	if opts.format == FormatJSON {
		return writeJSON(os.Stdout, issues)
	}
	writeValidationText(os.Stdout, issues)
	return nil
}

func runPageCommand(command string, doc *document.Document, pg *page.Page, opts cliOptions) error {
	switch command {
	case "text":
		textOpts := page.NewTextOptions()
		textOpts.Layout = opts.layout
		fmt.Println(pg.ExtractText(textOpts))

	case "chars":
		chars := pg.Chars()
		return emitChars(chars, opts)

	case "words":
		wordList := pg.ExtractWords(wordOptionsFrom(opts))
		return emitWords(wordList, opts)

	case "tables":
		tables := pg.FindTables(tableSettingsFrom(opts))
		return emitTables(tables, opts)

	case "images":
		return emitImages(pg.Images(), opts)

	case "annots", "links":
		links, err := doc.Hyperlinks(pg.Number)
		if err != nil {
			return err
		}
		if opts.format == FormatJSON {
			return writeJSON(os.Stdout, links)
		}
		writeLinksText(os.Stdout, links)

	case "forms":
		fields, err := doc.FormFields(pg.Number)
		if err != nil {
			return err
		}
		if opts.format == FormatJSON {
			return writeJSON(os.Stdout, fields)
		}
		writeFormFieldsText(os.Stdout, fields)

	case "search":
		return runSearch(pg, opts)

	case "debug":
		return runDebug(pg)
	}
	return nil
}

func runSearch(pg *page.Page, opts cliOptions) error {
	searchOpts := page.SearchOptions{Regex: opts.regex, CaseInsensitive: opts.ignoreCase}
	matches, err := pg.Search(opts.pattern, searchOpts)
	if err != nil {
		return err
	}
	if opts.format == FormatJSON {
		records := make([]searchMatchRecord, len(matches))
		for i, m := range matches {
			records[i] = toSearchMatchRecord(m, charIndices(pg.Chars(), m.Chars))
		}
		return writeJSON(os.Stdout, records)
	}
	for _, m := range matches {
		fmt.Printf("p.%d (%.2f,%.2f)-(%.2f,%.2f)\t%s\n",
			m.Page, round2(m.BBox.X0), round2(m.BBox.Top), round2(m.BBox.X1), round2(m.BBox.Bottom), m.Text)
	}
	return nil
}

func runDebug(pg *page.Page) error {
	return svgdebug.Render(os.Stdout, svgdebug.Input{
		Width: pg.Geometry.Width, Height: pg.Geometry.Height,
		Chars: pg.Chars(), Lines: pg.Lines(), Rects: pg.Rects(),
		Curves: pg.Curves(), Edges: pg.Edges(),
		Tables: pg.FindTables(table.NewSettings()),
	})
}

func emitChars(chars []pdfmodel.Char, opts cliOptions) error {
	switch opts.format {
	case FormatJSON:
		records := make([]charRecord, len(chars))
		for i, c := range chars {
			records[i] = toCharRecord(c)
		}
		return writeJSON(os.Stdout, records)
	case FormatCSV:
		writeCharsCSV(os.Stdout, chars)
	default:
		writeCharsText(os.Stdout, chars)
	}
	return nil
}

func emitWords(wordList []pdfmodel.Word, opts cliOptions) error {
	switch opts.format {
	case FormatJSON:
		records := make([]wordRecord, len(wordList))
		for i, w := range wordList {
			records[i] = toWordRecord(w)
		}
		return writeJSON(os.Stdout, records)
	case FormatCSV:
		writeWordsCSV(os.Stdout, wordList)
	default:
		writeWordsText(os.Stdout, wordList)
	}
	return nil
}

func emitTables(tables []pdfmodel.Table, opts cliOptions) error {
	if opts.format == FormatJSON {
		records := make([]tableRecord, len(tables))
		for i, t := range tables {
			records[i] = toTableRecord(t)
		}
		return writeJSON(os.Stdout, records)
	}
	writeTablesText(os.Stdout, tables)
	return nil
}

func emitImages(images []pdfmodel.Image, opts cliOptions) error {
	if opts.format == FormatJSON {
		records := make([]imageRecord, len(images))
		for i, img := range images {
			records[i] = toImageRecord(img)
		}
		return writeJSON(os.Stdout, records)
	}
	writeImagesText(os.Stdout, images)
	return nil
}
