package encoding

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CJKEncoding identifies one of the predefined CJK CMaps named in a
// Type0 font's /Encoding entry (spec.md §4.2). We resolve the CMap
// name to the legacy byte encoding it is built on and decode through
// golang.org/x/text/encoding, rather than shipping Adobe's CID
// registry tables ourselves.
type CJKEncoding int

const (
	CJKNone CJKEncoding = iota
	CJKGBK            // UniGB-*, GBK-EUC-*
	CJKBig5           // UniCNS-*, ETen-B5-*
	CJKShiftJIS       // UniJIS-*, 90ms-RKSJ-*
	CJKEUCKR          // UniKS-*, KSC-EUC-*
)

// CJKCMapFor maps a predefined CMap name to the encoding family that
// backs it. Only the name's registry prefix matters; the -H/-V
// (horizontal/vertical) writing-mode suffix does not affect decoding.
func CJKCMapFor(cmapName string) CJKEncoding {
	switch {
	case hasAnyPrefix(cmapName, "UniGB-", "GBK-EUC-", "GBKp-EUC-", "GBK2K-"):
		return CJKGBK
	case hasAnyPrefix(cmapName, "UniCNS-", "ETen-B5-", "HKscs-B5-"):
		return CJKBig5
	case hasAnyPrefix(cmapName, "UniJIS-", "90ms-RKSJ-", "90msp-RKSJ-", "90pv-RKSJ-", "Add-RKSJ-", "EUC-"):
		return CJKShiftJIS
	case hasAnyPrefix(cmapName, "UniKS-", "KSC-EUC-", "KSCms-UHC-"):
		return CJKEUCKR
	default:
		return CJKNone
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}

func decoderFor(enc CJKEncoding) *encoding.Decoder {
	switch enc {
	case CJKGBK:
		return simplifiedchinese.GBK.NewDecoder()
	case CJKBig5:
		return traditionalchinese.Big5.NewDecoder()
	case CJKShiftJIS:
		return japanese.ShiftJIS.NewDecoder()
	case CJKEUCKR:
		return korean.EUCKR.NewDecoder()
	default:
		return nil
	}
}

// DecodeCJKCode decodes a single- or double-byte legacy CJK code (as
// carried by a simple-font code in a CID-keyed Type0 font using a
// predefined CMap) to its rune, by probing the lead byte to determine
// whether the code is one or two bytes wide, then running the
// corresponding x/text decoder.
func DecodeCJKCode(enc CJKEncoding, code uint32) (rune, bool) {
	dec := decoderFor(enc)
	if dec == nil {
		return 0, false
	}
	var raw []byte
	if code > 0xFF {
		raw = []byte{byte(code >> 8), byte(code)}
	} else {
		raw = []byte{byte(code)}
	}
	out, err := dec.Bytes(raw)
	if err != nil || len(out) == 0 {
		return 0, false
	}
	runes := []rune(string(out))
	if len(runes) == 0 {
		return 0, false
	}
	return runes[0], true
}

// LeadByteIsDoubleByte reports whether a lead byte begins a two-byte
// sequence in the given CJK encoding, used by the content interpreter
// to decide how many bytes of a simple-font string to consume for one
// character code (spec.md §4.2).
func LeadByteIsDoubleByte(enc CJKEncoding, lead byte) bool {
	switch enc {
	case CJKGBK:
		return lead >= 0x81 && lead <= 0xFE
	case CJKBig5:
		return lead >= 0x81 && lead <= 0xFE
	case CJKShiftJIS:
		return (lead >= 0x81 && lead <= 0x9F) || (lead >= 0xE0 && lead <= 0xFC)
	case CJKEUCKR:
		return lead >= 0xA1 && lead <= 0xFE
	default:
		return false
	}
}
