//go:build windows

package scan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command string into arguments using cmd.exe quoting
// rules: double quotes group words, ^ escapes the next character and
// backslashes are literal except when a run of them precedes a double quote.
func Split(s string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	escaped := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		if escaped {
			current.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		switch {
		case r == '^' && !inQuotes:
			escaped = true
		case r == '\\':
			backslashes := 0
			for i < len(s) && s[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(s) && s[i] == '"' {
				current.WriteString(strings.Repeat(`\`, backslashes/2))
				if backslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					current.WriteByte('"')
				}
				i++
			} else {
				current.WriteString(strings.Repeat(`\`, backslashes))
			}
			continue
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			current.WriteRune(r)
		}
		i += size
	}
	flush()

	return tokens, nil
}
