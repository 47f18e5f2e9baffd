package products

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)`)

// ParsePrice reads the longest numeric prefix of s, ignoring leading
// whitespace, the way JavaScript's parseFloat does. "5.5" and "5.5kg" give
// 5.5; "abc" and "" give NaN.
func ParsePrice(s string) Price {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return NaN()
	}

	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return Price(math.Inf(-1))
		}
		return Price(math.Inf(1))
	}

	// Out-of-range input yields ±Inf along with the error, like parseFloat.
	f, _ := strconv.ParseFloat(m, 64)
	return Price(f)
}

// CoercePrice converts a raw JSON value into a price. Numbers pass through,
// strings go through ParsePrice, and everything else (null, booleans,
// objects, arrays, absent values) becomes NaN.
func CoercePrice(raw json.RawMessage) Price {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return NaN()
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return NaN()
		}
		return ParsePrice(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return NaN()
		}
		return Price(f)
	default:
		return NaN()
	}
}

// CoerceName converts a raw JSON value into a product name. Strings are kept
// as-is, null clears the name, and any other value is stored as its compact
// JSON text.
func CoerceName(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		s := string(raw)
		return &s
	}
	s := buf.String()
	return &s
}

// ParseID reads an integer from a path parameter the way JavaScript's
// parseInt does: leading whitespace and a sign are allowed, a 0x prefix
// switches to hexadecimal, and parsing stops at the first non-digit. The
// second result is false when no digits were found or the value overflows.
func ParseID(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return int(n), true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
