package scan

import (
	"strings"
	"unicode"
)

const maxBannerBytes = 1024

// DecodeBanner renders raw banner bytes as display-safe text. It never fails:
// invalid UTF-8 becomes U+FFFD and control characters other than tab, CR and
// LF are dropped. The result is trimmed, so an empty string means no banner.
func DecodeBanner(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	text := strings.ToValidUTF8(string(raw), string(unicode.ReplacementChar))

	text = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)

	return strings.TrimSpace(text)
}
