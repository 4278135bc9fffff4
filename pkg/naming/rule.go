package naming

import "strings"

// fieldSeparator joins the fields of every rule. Configurable
// separators are deliberately not supported.
const fieldSeparator = "_"

// NameToken is one solvable field of a naming rule: either a word
// *Token or a numeric *TokenNumber. These two are the only
// implementations.
type NameToken interface {
	Name() string
	Required() bool
	IsNumber() bool
}

// TokenResolver resolves token names while parsing a rule. *Session
// implements it.
type TokenResolver interface {
	Token(name string) (NameToken, bool)
}

// Rule is an ordered, non-empty sequence of token names joined by
// underscores into a fixed naming pattern.
//
// Token existence is validated when solving or parsing through a
// session, not when the rule is created.
type Rule struct {
	name   string
	fields []string
}

// NewRule creates a rule from an ordered list of token names. At least
// one field is required.
func NewRule(name string, fields ...string) (*Rule, error) {
	if len(fields) == 0 {
		return nil, newError(KindUsage, name, "a rule needs at least one field")
	}
	r := &Rule{name: name}
	r.AddFields(fields...)
	return r, nil
}

// Name returns the rule's identifier within a session.
func (r *Rule) Name() string { return r.name }

// Fields returns a copy of the ordered token names.
func (r *Rule) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// AddFields appends token names to the rule. The field list is
// append-only.
func (r *Rule) AddFields(names ...string) {
	r.fields = append(r.fields, names...)
}

// Pattern returns the derived naming pattern, each field wrapped as a
// named placeholder: fields [a b c] produce "{a}_{b}_{c}".
func (r *Rule) Pattern() string {
	return "{" + strings.Join(r.fields, "}"+fieldSeparator+"{") + "}"
}

// Solve substitutes already-solved string pieces into the pattern and
// returns the joined name. Every field of the rule must be present in
// values.
func (r *Rule) Solve(values map[string]string) (string, error) {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		v, ok := values[f]
		if !ok {
			return "", newError(KindUsage, r.name, "missing value for field %q", f)
		}
		parts[i] = v
	}
	return strings.Join(parts, fieldSeparator), nil
}

// Parse splits name on underscores and inverts each piece through the
// corresponding token, returning a mapping from field name to parsed
// value. Numeric fields parse to int; required word fields keep the raw
// name part; optional word fields reverse-look-up the abbreviation.
//
// The split is positional: the name must have exactly one part per
// field. An underscore inside a resolved field value therefore breaks
// parsing; this is a structural constraint of the format.
func (r *Rule) Parse(name string, tokens TokenResolver) (Values, error) {
	parts := strings.Split(name, fieldSeparator)
	if len(parts) != len(r.fields) {
		return nil, newError(KindParse, r.name,
			"name %q has %d parts, rule expects %d", name, len(parts), len(r.fields))
	}
	values := make(Values, len(r.fields))
	for i, f := range r.fields {
		tok, ok := tokens.Token(f)
		if !ok {
			return nil, newError(KindLookup, r.name,
				"field %q does not match a registered token", f)
		}
		switch tk := tok.(type) {
		case *TokenNumber:
			n, err := tk.Parse(parts[i])
			if err != nil {
				return nil, err
			}
			values[f] = n
		case *Token:
			if tk.Required() {
				values[f] = parts[i]
			} else {
				values[f] = tk.Parse(parts[i])
			}
		default:
			return nil, newError(KindLookup, r.name,
				"field %q resolved to an unknown token type", f)
		}
	}
	return values, nil
}
