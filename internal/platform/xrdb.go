package platform

import (
	"bufio"
	"bytes"
	"strings"
)

// parseXrdbDPI extracts the dpi value from `xrdb -query` output. It mirrors
// the `grep dpi | cut -f 2` pipeline: the first line mentioning dpi is split
// on tabs and the second field is read as a leading integer. A line without
// a tab is used whole, as cut does. ok is false when no line mentions dpi.
func parseXrdbDPI(out []byte) (dpi int64, ok bool) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "dpi") {
			continue
		}
		field := line
		if _, after, found := strings.Cut(line, "\t"); found {
			field, _, _ = strings.Cut(after, "\t")
		}
		return leadingInt(field), true
	}
	return 0, false
}

// leadingInt parses a base-10 integer prefix with strtol semantics: leading
// whitespace and an optional sign are accepted, parsing stops at the first
// non-digit, and no digits yields zero.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
		if n > 1<<31 {
			// out of range for any real DPI; clamp like strtol clamps at LONG_MAX
			break
		}
	}
	if neg {
		return -n
	}
	return n
}
