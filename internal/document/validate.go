package document

import (
	"fmt"
	"strings"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// Validate runs every page's content stream and turns the warnings the
// interpreter already collects into structured ValidationIssue records
// (spec.md §7 taxonomy item 7, §8 scenario 6), plus a document-level
// check for the repair path having been needed at all. Never fatal:
// this always returns, even for a document every page of which failed
// to interpret.
func (d *Document) Validate() []pdfmodel.ValidationIssue {
	var issues []pdfmodel.ValidationIssue

	if len(d.repairLog) > 0 {
		issues = append(issues, pdfmodel.ValidationIssue{
			Severity: pdfmodel.SeverityWarning,
			Code:     "BROKEN_XREF",
			Message:  "document required repair to open",
			Page:     0,
		})
	}

	for n := 1; n <= d.pageCount; n++ {
		p, err := d.Page(n)
		if err != nil {
			issues = append(issues, pdfmodel.ValidationIssue{
				Severity: pdfmodel.SeverityError,
				Code:     "ORPHAN_OBJECT",
				Message:  err.Error(),
				Page:     n,
			})
			continue
		}
		for _, w := range p.Warnings() {
			issues = append(issues, warningToIssue(w, n))
		}
	}

	return issues
}

// warningToIssue maps an interpreter/resource-loading warning code to
// a validation issue code. "font" warnings in particular back
// spec.md §8 scenario 6's MISSING_FONT expectation; the mapping is
// deliberately coarse since every warning the interpreter records is
// already specific enough in its message text.
func warningToIssue(w pdfmodel.Warning, page int) pdfmodel.ValidationIssue {
	code := strings.ToUpper(w.Code)
	switch w.Code {
	case "font":
		code = "MISSING_FONT"
	case "operator":
		code = "UNKNOWN_OPERATOR"
	case "interpreter":
		code = "INTERPRETER"
	}
	return pdfmodel.ValidationIssue{
		Severity: pdfmodel.SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf("page %d: %s", page, w.Message),
		Page:     page,
	}
}
