package naming

import (
	"bytes"
	"encoding/json"
)

// Serialized class tags and schema version. The tags are the wire
// identity of each entity; loaders dispatch on them through a closed
// table, never through dynamic lookup.
const (
	classToken       = "Token"
	classTokenNumber = "TokenNumber"
	classRule        = "Rule"

	serialVersion = "1.0"
)

// optionData is one vocabulary pair on the wire. Options serialize as
// an ordered array so the first-inserted default survives a round
// trip; a JSON object would lose insertion order.
type optionData struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type tokenData struct {
	Classname string       `json:"_classname"`
	Version   string       `json:"_version"`
	Name      string       `json:"name"`
	Default   string       `json:"default,omitempty"`
	Options   []optionData `json:"options"`
}

type tokenNumberData struct {
	Classname string `json:"_classname"`
	Version   string `json:"_version"`
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	Padding   int    `json:"padding"`
	Suffix    string `json:"suffix"`
}

type ruleData struct {
	Classname string   `json:"_classname"`
	Version   string   `json:"_version"`
	Name      string   `json:"name"`
	Fields    []string `json:"fields"`
}

// MarshalToken serializes a word or numeric token to its tagged JSON
// form.
func MarshalToken(tok NameToken) ([]byte, error) {
	switch tk := tok.(type) {
	case *Token:
		data := tokenData{
			Classname: classToken,
			Version:   serialVersion,
			Name:      tk.name,
			Default:   tk.defaultKey,
			Options:   make([]optionData, len(tk.options)),
		}
		for i, opt := range tk.options {
			data.Options[i] = optionData{Name: opt.Key, Abbreviation: opt.Abbr}
		}
		return json.Marshal(data)
	case *TokenNumber:
		return json.Marshal(tokenNumberData{
			Classname: classTokenNumber,
			Version:   serialVersion,
			Name:      tk.name,
			Prefix:    tk.prefix,
			Padding:   tk.padding,
			Suffix:    tk.suffix,
		})
	default:
		return nil, newError(KindConfig, tok.Name(), "unknown token type %T", tok)
	}
}

// UnmarshalToken deserializes a tagged JSON document into a *Token or
// *TokenNumber, dispatching on the _classname tag. Unknown tags and
// unknown attributes are config errors.
func UnmarshalToken(data []byte) (NameToken, error) {
	classname, err := peekClassname(data)
	if err != nil {
		return nil, err
	}
	switch classname {
	case classToken:
		var td tokenData
		if err := strictUnmarshal(data, &td); err != nil {
			return nil, wrapError(KindConfig, "", err, "malformed token document")
		}
		tok := NewToken(td.Name)
		for _, opt := range td.Options {
			tok.AddOption(opt.Name, opt.Abbreviation)
		}
		if td.Default != "" {
			if err := tok.SetDefault(td.Default); err != nil {
				return nil, err
			}
		}
		return tok, nil
	case classTokenNumber:
		var td tokenNumberData
		if err := strictUnmarshal(data, &td); err != nil {
			return nil, wrapError(KindConfig, "", err, "malformed token document")
		}
		return NewTokenNumber(td.Name, td.Prefix, td.Padding, td.Suffix), nil
	default:
		return nil, newError(KindConfig, "", "unknown token class %q", classname)
	}
}

// MarshalRule serializes a rule to its tagged JSON form.
func MarshalRule(rule *Rule) ([]byte, error) {
	return json.Marshal(ruleData{
		Classname: classRule,
		Version:   serialVersion,
		Name:      rule.name,
		Fields:    rule.Fields(),
	})
}

// UnmarshalRule deserializes a tagged JSON document into a *Rule.
func UnmarshalRule(data []byte) (*Rule, error) {
	classname, err := peekClassname(data)
	if err != nil {
		return nil, err
	}
	if classname != classRule {
		return nil, newError(KindConfig, "", "unknown rule class %q", classname)
	}
	var rd ruleData
	if err := strictUnmarshal(data, &rd); err != nil {
		return nil, wrapError(KindConfig, "", err, "malformed rule document")
	}
	return NewRule(rd.Name, rd.Fields...)
}

func peekClassname(data []byte) (string, error) {
	var header struct {
		Classname string `json:"_classname"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return "", wrapError(KindConfig, "", err, "not a valid JSON document")
	}
	if header.Classname == "" {
		return "", newError(KindConfig, "", "document has no _classname tag")
	}
	return header.Classname, nil
}

// strictUnmarshal rejects attributes the schema does not declare, so
// stray fields in hand-edited session files fail loudly instead of
// being silently dropped into internal state.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
