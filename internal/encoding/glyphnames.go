package encoding

import (
	"sort"
	"strconv"
	"strings"
)

// glyphEntry is one row of the bundled Adobe glyph-name table, sorted
// alphabetically by name so RuneForGlyphName can binary-search it.
type glyphEntry struct {
	name string
	r    rune
}

// adobeGlyphList covers the ~250 glyph names that occur in the standard
// encodings above plus the common Latin/symbol extras seen in real font
// Differences arrays. Sorted by name at init time rather than by hand,
// so entries can be added in any order.
var adobeGlyphList = func() []glyphEntry {
	raw := map[string]rune{
		"A": 'A', "AE": 'Æ', "Aacute": 'Á', "Acircumflex": 'Â', "Adieresis": 'Ä',
		"Agrave": 'À', "Aring": 'Å', "Atilde": 'Ã', "B": 'B', "C": 'C',
		"Ccedilla": 'Ç', "D": 'D', "E": 'E', "Eacute": 'É', "Ecircumflex": 'Ê',
		"Edieresis": 'Ë', "Egrave": 'È', "Eth": 'Ð', "Euro": '€', "F": 'F',
		"G": 'G', "H": 'H', "I": 'I', "Iacute": 'Í', "Icircumflex": 'Î',
		"Idieresis": 'Ï', "Igrave": 'Ì', "J": 'J', "K": 'K', "L": 'L',
		"Lslash": 'Ł', "M": 'M', "N": 'N', "Ntilde": 'Ñ', "O": 'O', "OE": 'Œ',
		"Oacute": 'Ó', "Ocircumflex": 'Ô', "Odieresis": 'Ö', "Ograve": 'Ò',
		"Oslash": 'Ø', "Otilde": 'Õ', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S',
		"Scaron": 'Š', "T": 'T', "Thorn": 'Þ', "U": 'U', "Uacute": 'Ú',
		"Ucircumflex": 'Û', "Udieresis": 'Ü', "Ugrave": 'Ù', "V": 'V', "W": 'W',
		"X": 'X', "Y": 'Y', "Yacute": 'Ý', "Ydieresis": 'Ÿ', "Z": 'Z',
		"Zcaron": 'Ž', "a": 'a', "aacute": 'á', "acircumflex": 'â', "acute": '´',
		"adieresis": 'ä', "ae": 'æ', "agrave": 'à', "ampersand": '&',
		"aring": 'å', "asciicircum": '^', "asciitilde": '~', "asterisk": '*',
		"at": '@', "atilde": 'ã', "b": 'b', "backslash": '\\', "bar": '|',
		"braceleft": '{', "braceright": '}', "bracketleft": '[',
		"bracketright": ']', "breve": '˘', "brokenbar": '¦', "bullet": '•',
		"c": 'c', "caron": 'ˇ', "ccedilla": 'ç', "cedilla": '¸', "cent": '¢',
		"circumflex": 'ˆ', "colon": ':', "comma": ',', "copyright": '©',
		"currency": '¤', "d": 'd', "dagger": '†', "daggerdbl": '‡',
		"degree": '°', "dieresis": '¨', "divide": '÷', "dollar": '$',
		"dotaccent": '˙', "dotlessi": 'ı', "e": 'e', "eacute": 'é',
		"ecircumflex": 'ê', "edieresis": 'ë', "egrave": 'è', "eight": '8',
		"ellipsis": '…', "emdash": '—', "endash": '–', "equal": '=',
		"eth": 'ð', "exclam": '!', "exclamdown": '¡', "f": 'f', "fi": 'ﬁ',
		"five": '5', "fl": 'ﬂ', "florin": 'ƒ', "four": '4', "fraction": '⁄',
		"g": 'g', "germandbls": 'ß', "grave": '`', "greater": '>',
		"guillemotleft": '«', "guillemotright": '»', "guilsinglleft": '‹',
		"guilsinglright": '›', "h": 'h', "hungarumlaut": '˝', "hyphen": '-',
		"i": 'i', "iacute": 'í', "icircumflex": 'î', "idieresis": 'ï',
		"igrave": 'ì', "j": 'j', "k": 'k', "l": 'l', "less": '<',
		"logicalnot": '¬', "lslash": 'ł', "m": 'm', "macron": '¯', "mu": 'µ',
		"multiply": '×', "n": 'n', "nine": '9', "ntilde": 'ñ', "numbersign": '#',
		"o": 'o', "oacute": 'ó', "ocircumflex": 'ô', "odieresis": 'ö', "oe": 'œ',
		"ogonek": '˛', "ograve": 'ò', "one": '1', "onehalf": '½',
		"onequarter": '¼', "onesuperior": '¹', "ordfeminine": 'ª',
		"ordmasculine": 'º', "oslash": 'ø', "otilde": 'õ', "p": 'p',
		"paragraph": '¶', "parenleft": '(', "parenright": ')', "percent": '%',
		"period": '.', "periodcentered": '·', "perthousand": '‰', "plus": '+',
		"plusminus": '±', "q": 'q', "question": '?', "questiondown": '¿',
		"quotedbl": '"', "quotedblbase": '„', "quotedblleft": '“',
		"quotedblright": '”', "quoteleft": '‘', "quoteright": '’',
		"quotesinglbase": '‚', "quotesingle": '\'', "r": 'r', "registered": '®',
		"ring": '˚', "s": 's', "scaron": 'š', "section": '§', "semicolon": ';',
		"seven": '7', "six": '6', "slash": '/', "space": ' ', "sterling": '£',
		"t": 't', "thorn": 'þ', "three": '3', "threequarters": '¾',
		"threesuperior": '³', "tilde": '˜', "trademark": '™', "two": '2',
		"twosuperior": '²', "u": 'u', "uacute": 'ú', "ucircumflex": 'û',
		"udieresis": 'ü', "ugrave": 'ù', "underscore": '_', "v": 'v', "w": 'w',
		"x": 'x', "y": 'y', "yacute": 'ý', "ydieresis": 'ÿ', "yen": '¥',
		"z": 'z', "zcaron": 'ž', "zero": '0',
	}
	entries := make([]glyphEntry, 0, len(raw))
	for name, r := range raw {
		entries = append(entries, glyphEntry{name: name, r: r})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}()

// RuneForGlyphName resolves a PostScript glyph name to a rune, per
// spec.md §4.2's glyph-name resolution step. Supports the bundled
// Adobe table, the uniXXXX/uniXXXXXXXX hex forms, and single-character
// names (a Differences entry is occasionally just the literal glyph).
func RuneForGlyphName(name string) (rune, bool) {
	if r, ok := lookupAdobeName(name); ok {
		return r, true
	}
	if strings.HasPrefix(name, "uni") && len(name) >= 7 {
		hex := name[3:]
		if len(hex) == 4 || len(hex) >= 8 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return rune(v), true
			}
		}
	}
	if strings.HasPrefix(name, "u") && len(name) >= 5 && len(name) <= 7 {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return rune(v), true
		}
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func lookupAdobeName(name string) (rune, bool) {
	i := sort.Search(len(adobeGlyphList), func(i int) bool { return adobeGlyphList[i].name >= name })
	if i < len(adobeGlyphList) && adobeGlyphList[i].name == name {
		return adobeGlyphList[i].r, true
	}
	return 0, false
}
