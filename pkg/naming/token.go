package naming

import "strings"

// Opt is a single full-name to abbreviation pair of a token vocabulary.
type Opt struct {
	// Key is the full-length name of the option (e.g. "left").
	Key string

	// Abbr is the abbreviation used when building names (e.g. "L").
	Abbr string
}

// Token is the abbreviation dictionary for one field of a naming rule.
//
// A token with no options and no default is required: the caller must
// supply a value when solving and the value passes through verbatim.
// A token with options resolves full names to abbreviations; when no
// value is supplied it falls back to its default option, which is the
// explicitly set default or the first option ever added.
//
// Options preserve insertion order so the first-inserted fallback is
// deterministic and survives serialization.
type Token struct {
	name       string
	defaultKey string
	options    []Opt
	index      map[string]int
}

// NewToken creates an empty (required) token with the given name.
func NewToken(name string) *Token {
	return &Token{name: name, index: make(map[string]int)}
}

// Name returns the token's identifier within a session.
func (t *Token) Name() string { return t.name }

// IsNumber reports whether this token is a numeric field. Always false
// for Token; see TokenNumber.
func (t *Token) IsNumber() bool { return false }

// AddOption inserts a full-name to abbreviation pair. Re-adding an
// existing key overwrites the abbreviation but keeps the key's original
// insertion position.
func (t *Token) AddOption(key, abbr string) {
	if i, ok := t.index[key]; ok {
		t.options[i].Abbr = abbr
		return
	}
	t.index[key] = len(t.options)
	t.options = append(t.options, Opt{Key: key, Abbr: abbr})
}

// Options returns a copy of the option pairs in insertion order.
func (t *Token) Options() []Opt {
	out := make([]Opt, len(t.options))
	copy(out, t.options)
	return out
}

// SetDefault marks an existing option key as the default. Setting a key
// that was never added is a usage error.
func (t *Token) SetDefault(key string) error {
	if _, ok := t.index[key]; !ok {
		return newError(KindUsage, t.name,
			"default %q is not a known option. Options: %s", key, t.optionKeys())
	}
	t.defaultKey = key
	return nil
}

// Default returns the default option key: the explicitly set default,
// else the first-inserted option, else "". The value is recomputed on
// every call so later AddOption or SetDefault calls are always
// reflected.
func (t *Token) Default() string {
	if t.defaultKey != "" {
		return t.defaultKey
	}
	if len(t.options) > 0 {
		return t.options[0].Key
	}
	return ""
}

// Required reports whether the caller must supply a value when solving.
// A token is required exactly when it has no default and no options.
func (t *Token) Required() bool {
	return t.Default() == ""
}

// Solve resolves a full name to the string piece used in the built
// name.
//
// For a required token the value is mandatory and returned verbatim.
// For a token with options a non-empty value must be a known option key
// and resolves to its abbreviation; an empty value resolves to the
// default option's abbreviation.
func (t *Token) Solve(value string) (string, error) {
	if t.Required() {
		if value == "" {
			return "", newError(KindUsage, t.name,
				"token is required, a value must be passed")
		}
		return value, nil
	}
	if value == "" {
		return t.options[t.index[t.Default()]].Abbr, nil
	}
	i, ok := t.index[value]
	if !ok {
		return "", newError(KindLookup, t.name,
			"value %q not found. Options: %s", value, t.optionKeys())
	}
	return t.options[i].Abbr, nil
}

// Parse reverse-looks-up an abbreviation and returns its full name.
// The first option (in insertion order) whose abbreviation matches
// wins. Unrecognized abbreviations pass through unchanged, which keeps
// round trips lossless for values the vocabulary does not cover.
func (t *Token) Parse(value string) string {
	for _, opt := range t.options {
		if opt.Abbr == value {
			return opt.Key
		}
	}
	return value
}

func (t *Token) optionKeys() string {
	keys := make([]string, len(t.options))
	for i, opt := range t.options {
		keys[i] = opt.Key
	}
	return strings.Join(keys, ", ")
}
