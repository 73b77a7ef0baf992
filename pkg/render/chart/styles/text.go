package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	charWidthNarrow  = 0.30
	charWidthDefault = 0.55
	charWidthUpper   = 0.66
	charWidthWide    = 1.00
)

// charWidth estimates a rune's advance as a fraction of the font size. The
// table only needs to be good enough for caption clearance, not typography.
func charWidth(r rune) float64 {
	switch {
	case r == ' ', r == 'i', r == 'j', r == 'l', r == 'I', r == '.',
		r == ',', r == ':', r == ';', r == '!', r == '|', r == '\'':
		return charWidthNarrow
	case r >= 'A' && r <= 'Z':
		return charWidthUpper
	case isWide(r):
		return charWidthWide
	default:
		return charWidthDefault
	}
}

// isWide reports whether r renders full-width (CJK ideographs, kana, hangul,
// and the fullwidth forms block).
func isWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F: // hangul jamo
		return true
	case r >= 0x2E80 && r <= 0x303E: // CJK radicals, punctuation
		return true
	case r >= 0x3041 && r <= 0x33FF: // kana, CJK symbols
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return true
	case r >= 0xFF00 && r <= 0xFF60: // fullwidth forms
		return true
	}
	return false
}

// TextWidth estimates the rendered width of s at the given font size.
func TextWidth(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		w += charWidth(r)
	}
	return w * size
}

// WrapText splits s into chunks of at most limit runes. No word boundaries:
// caption columns are narrow and names, variant strings, and CJK text have
// none to speak of. An empty string yields no lines; a non-positive limit
// yields s unchanged.
func WrapText(s string, limit int) []string {
	if s == "" {
		return nil
	}
	if limit <= 0 {
		return []string{s}
	}
	runes := []rune(s)
	out := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}

// TruncateToWidth shortens s so it renders within maxWidth at the given font
// size, appending ".." when anything was cut.
func TruncateToWidth(s string, size, maxWidth float64) string {
	if TextWidth(s, size) <= maxWidth {
		return s
	}
	runes := []rune(s)
	budget := maxWidth - TextWidth("..", size)
	var w float64
	for i, r := range runes {
		cw := charWidth(r) * size
		if w+cw > budget {
			return string(runes[:i]) + ".."
		}
		w += cw
	}
	return s
}

// EscapeXML escapes text for use in SVG attribute or character data.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
