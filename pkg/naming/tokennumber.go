package naming

import (
	"fmt"
	"strconv"
)

// TokenNumber is a numeric field of a naming rule: an integer rendered
// with a minimum zero-padded width between a fixed prefix and suffix
// (e.g. version 25 with prefix "v" and padding 3 solves to "v025").
//
// Numeric tokens are always required; the caller supplies the integer
// explicitly when solving.
type TokenNumber struct {
	name    string
	prefix  string
	suffix  string
	padding int
}

// NewTokenNumber creates a numeric token. A padding of zero or less is
// coerced to 1.
func NewTokenNumber(name, prefix string, padding int, suffix string) *TokenNumber {
	t := &TokenNumber{name: name, prefix: prefix, suffix: suffix}
	t.SetPadding(padding)
	return t
}

// Name returns the token's identifier within a session.
func (t *TokenNumber) Name() string { return t.name }

// IsNumber reports whether this token is a numeric field. Always true.
func (t *TokenNumber) IsNumber() bool { return true }

// Required is always true: numeric fields have no vocabulary to fall
// back on.
func (t *TokenNumber) Required() bool { return true }

// Default is the documented fallback value for numeric tokens. It is
// never used implicitly while solving.
func (t *TokenNumber) Default() int { return 1 }

// Prefix returns the fixed string prepended to the padded digits.
func (t *TokenNumber) Prefix() string { return t.prefix }

// SetPrefix replaces the prefix.
func (t *TokenNumber) SetPrefix(p string) { t.prefix = p }

// Suffix returns the fixed string appended to the padded digits.
func (t *TokenNumber) Suffix() string { return t.suffix }

// SetSuffix replaces the suffix.
func (t *TokenNumber) SetSuffix(s string) { t.suffix = s }

// Padding returns the minimum digit width.
func (t *TokenNumber) Padding() int { return t.padding }

// SetPadding sets the minimum digit width, coercing values of zero or
// less to 1.
func (t *TokenNumber) SetPadding(p int) {
	if p <= 0 {
		p = 1
	}
	t.padding = p
}

// Solve formats number zero-padded to at least Padding digits and
// wraps it with the prefix and suffix. Padding is a minimum width only;
// larger numbers keep all their digits.
func (t *TokenNumber) Solve(number int) string {
	return fmt.Sprintf("%s%0*d%s", t.prefix, t.padding, number, t.suffix)
}

// Parse recovers the integer embedded in value. The leading non-digit
// run is treated as the prefix and the trailing non-digit run as the
// suffix; the remaining middle must be purely numeric. Parse inverts
// Solve for any value Solve can produce, including with an empty prefix
// or suffix.
//
// A value with no digits, or with digits interrupted by non-digits, is
// a parse error.
func (t *TokenNumber) Parse(value string) (int, error) {
	i := 0
	for i < len(value) && !isDigit(value[i]) {
		i++
	}
	j := len(value)
	for j > 0 && !isDigit(value[j-1]) {
		j--
	}
	if i >= j {
		return 0, newError(KindParse, t.name, "no digits found in %q", value)
	}
	n, err := strconv.Atoi(value[i:j])
	if err != nil {
		return 0, wrapError(KindParse, t.name, err,
			"numeric part of %q is not a valid integer", value)
	}
	return n, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
