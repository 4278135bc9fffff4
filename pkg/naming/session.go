package naming

import (
	"log/slog"
	"sort"
)

// Values maps field names to solve inputs or parse results. Word
// fields carry strings, numeric fields carry ints.
type Values map[string]any

// Session owns the mutable registries of a naming convention: named
// tokens, named rules and the active-rule pointer. All solve, parse
// and persistence operations go through a Session; there is no
// package-level shared state.
//
// A Session is not safe for concurrent use without external
// synchronization.
type Session struct {
	tokens map[string]NameToken
	rules  map[string]*Rule
	active string
	logger *slog.Logger
}

// NewSession creates an empty session logging through slog.Default.
func NewSession() *Session {
	return &Session{
		tokens: make(map[string]NameToken),
		rules:  make(map[string]*Rule),
		logger: slog.Default(),
	}
}

// SetLogger replaces the logger used for persistence diagnostics.
func (s *Session) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// AddToken registers a word token with the given options in order.
// An existing token of the same name is replaced.
func (s *Session) AddToken(name string, opts ...Opt) *Token {
	tok := NewToken(name)
	for _, o := range opts {
		tok.AddOption(o.Key, o.Abbr)
	}
	s.tokens[name] = tok
	return tok
}

// AddTokenNumber registers a numeric token. An existing token of the
// same name is replaced.
func (s *Session) AddTokenNumber(name, prefix string, padding int, suffix string) *TokenNumber {
	tok := NewTokenNumber(name, prefix, padding, suffix)
	s.tokens[name] = tok
	return tok
}

// PutToken registers an already constructed token under its own name,
// replacing any existing one. Used by session loaders.
func (s *Session) PutToken(tok NameToken) {
	s.tokens[tok.Name()] = tok
}

// RemoveToken deletes a token by name, reporting whether it existed.
func (s *Session) RemoveToken(name string) bool {
	if _, ok := s.tokens[name]; !ok {
		return false
	}
	delete(s.tokens, name)
	return true
}

// HasToken reports whether a token with the given name is registered.
func (s *Session) HasToken(name string) bool {
	_, ok := s.tokens[name]
	return ok
}

// Token returns the registered token with the given name.
func (s *Session) Token(name string) (NameToken, bool) {
	tok, ok := s.tokens[name]
	return tok, ok
}

// Tokens returns all registered tokens sorted by name.
func (s *Session) Tokens() []NameToken {
	out := make([]NameToken, 0, len(s.tokens))
	for _, tok := range s.tokens {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// ResetTokens removes every registered token.
func (s *Session) ResetTokens() {
	s.tokens = make(map[string]NameToken)
}

// AddRule registers a rule over the given ordered token names. The
// first rule added to a session becomes the active rule. An existing
// rule of the same name is replaced.
func (s *Session) AddRule(name string, fields ...string) (*Rule, error) {
	rule, err := NewRule(name, fields...)
	if err != nil {
		return nil, err
	}
	s.rules[name] = rule
	if s.ActiveRule() == nil {
		s.SetActiveRule(name)
	}
	return rule, nil
}

// PutRule registers an already constructed rule under its own name,
// replacing any existing one. Used by session loaders.
func (s *Session) PutRule(rule *Rule) {
	s.rules[rule.Name()] = rule
}

// RemoveRule deletes a rule by name, reporting whether it existed.
// Removing the active rule leaves the active pointer dangling;
// ActiveRule then returns nil until a new rule is activated.
func (s *Session) RemoveRule(name string) bool {
	if _, ok := s.rules[name]; !ok {
		return false
	}
	delete(s.rules, name)
	return true
}

// HasRule reports whether a rule with the given name is registered.
func (s *Session) HasRule(name string) bool {
	_, ok := s.rules[name]
	return ok
}

// Rule returns the registered rule with the given name.
func (s *Session) Rule(name string) (*Rule, bool) {
	rule, ok := s.rules[name]
	return rule, ok
}

// Rules returns all registered rules sorted by name.
func (s *Session) Rules() []*Rule {
	out := make([]*Rule, 0, len(s.rules))
	for _, rule := range s.rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// ResetRules removes every registered rule and clears the active
// pointer.
func (s *Session) ResetRules() {
	s.rules = make(map[string]*Rule)
	s.active = ""
}

// SetActiveRule points the session at an existing rule, reporting
// false when no rule with that name is registered.
func (s *Session) SetActiveRule(name string) bool {
	if !s.HasRule(name) {
		return false
	}
	s.active = name
	return true
}

// ActiveRule returns the currently active rule, or nil when none is
// set or the pointer is stale (the rule was removed).
func (s *Session) ActiveRule() *Rule {
	return s.rules[s.active]
}

// ActiveRuleName returns the name of the active rule, or "" when
// ActiveRule would return nil.
func (s *Session) ActiveRuleName() string {
	if s.ActiveRule() == nil {
		return ""
	}
	return s.active
}

// Solve builds a name from the active rule. Named values take
// precedence; remaining required fields (word or numeric) consume
// positional values in rule order. Optional word fields are only ever
// fed from named values and fall back to their default when absent.
//
// Word fields take string values, numeric fields take ints.
func (s *Session) Solve(named Values, positional ...any) (string, error) {
	rule := s.ActiveRule()
	if rule == nil {
		return "", newError(KindLookup, "", "no active rule set")
	}
	values := make(map[string]string, len(rule.fields))
	next := 0
	take := func(field string) (any, error) {
		if v, ok := named[field]; ok {
			return v, nil
		}
		if next >= len(positional) {
			return nil, newError(KindUsage, rule.name,
				"missing value for required field %q", field)
		}
		v := positional[next]
		next++
		return v, nil
	}
	for _, f := range rule.fields {
		tok, ok := s.tokens[f]
		if !ok {
			return "", newError(KindLookup, rule.name,
				"field %q does not match a registered token", f)
		}
		switch tk := tok.(type) {
		case *TokenNumber:
			v, err := take(f)
			if err != nil {
				return "", err
			}
			n, ok := v.(int)
			if !ok {
				return "", newError(KindUsage, tk.name,
					"numeric field wants an int, got %T", v)
			}
			values[f] = tk.Solve(n)
		case *Token:
			if tk.Required() {
				v, err := take(f)
				if err != nil {
					return "", err
				}
				str, ok := v.(string)
				if !ok {
					return "", newError(KindUsage, tk.name,
						"field wants a string, got %T", v)
				}
				values[f] = str
			} else {
				var str string
				if v, ok := named[f]; ok {
					str, ok = v.(string)
					if !ok {
						return "", newError(KindUsage, tk.name,
							"field wants a string, got %T", v)
					}
				}
				solved, err := tk.Solve(str)
				if err != nil {
					return "", err
				}
				values[f] = solved
			}
		}
	}
	return rule.Solve(values)
}

// Parse inverts a name through the active rule, returning a mapping
// from field name to parsed value.
func (s *Session) Parse(name string) (Values, error) {
	rule := s.ActiveRule()
	if rule == nil {
		return nil, newError(KindLookup, "", "no active rule set")
	}
	return rule.Parse(name, s)
}
