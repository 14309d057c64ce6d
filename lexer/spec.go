package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/nfalex"
	"github.com/npillmayer/nfalex/regex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// ErrInvalidSpec is wrapped by all errors concerning the structure of a lexer
// specification.
var ErrInvalidSpec = errors.New("invalid lexer specification")

// Spec is a lexer specification, usually loaded from YAML:
//
//    names:
//      digit:  { range: ["0", "9"] }
//      letter: { or: [ { range: ["a", "z"] }, { range: ["A", "Z"] } ] }
//    tokens:
//      NUM:   1
//      IDENT: 2
//    patterns:
//      - token: NUM
//        value: int
//        regex: { plus: { name: digit } }
//      - token: IDENT
//        regex: { plus: { name: letter } }
//      - skip: true
//        regex: { set: " \t\n" }
//
// A regex is a map with exactly one of the keys
//
//    eps        any value             the empty string
//    char       "c"                   a single character
//    str        "text"                a sequence of characters
//    set        "abc"                 one of the characters
//    allexcept  "abc"                 any extended ASCII character but these
//    range      ["a", "z"]            characters a…z inclusive
//    seq, or    [ regex, … ]          concatenation, alternation
//    star, plus, opt   regex          repetition
//    name       "digit"               reference to an entry of names
//
// Patterns have either a token name, which has to be listed in tokens, or skip.
// The optional value converts the lexeme to "int" or "float" (see IntValue and
// FloatValue; lexemes out of range are kept as strings).
type Spec struct {
	Names    map[string]interface{} `yaml:"names"`
	Tokens   map[string]int         `yaml:"tokens"`
	Patterns []PatternSpec          `yaml:"patterns"`
}

// PatternSpec is a single pattern of a Spec.
type PatternSpec struct {
	Token string      `yaml:"token"`
	Skip  bool        `yaml:"skip"`
	Value string      `yaml:"value"`
	Regex interface{} `yaml:"regex"`
}

// LoadSpec reads a YAML lexer specification. Unknown fields are an error.
func LoadSpec(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	spec := &Spec{}
	if err := yaml.UnmarshalStrict(data, spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	tracer().Debugf("loaded lexer spec with %d names, %d tokens, %d patterns",
		len(spec.Names), len(spec.Tokens), len(spec.Patterns))
	return spec, nil
}

// Builder converts the specification into a lexer builder. Tokens are created
// with MakeToken or ConvertToken, skip-patterns use Skip.
func (spec *Spec) Builder() (*Builder, error) {
	names := make(regex.NameTable, len(spec.Names))
	for name, n := range spec.Names {
		node, err := yamlNode(n)
		if err != nil {
			return nil, fmt.Errorf("name %q: %w", name, err)
		}
		names[name] = node
	}
	b := NewBuilder(names)
	for i, p := range spec.Patterns {
		node, err := yamlNode(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i, err)
		}
		action, err := spec.action(p)
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i, err)
		}
		b.Add(node, action)
	}
	return b, nil
}

func (spec *Spec) action(p PatternSpec) (Action, error) {
	if p.Skip {
		if p.Token != "" {
			return nil, fmt.Errorf("%w: pattern has token %q and skip", ErrInvalidSpec, p.Token)
		}
		return Skip, nil
	}
	typ, ok := spec.Tokens[p.Token]
	if !ok {
		return nil, fmt.Errorf("%w: undeclared token %q", ErrInvalidSpec, p.Token)
	}
	switch p.Value {
	case "":
		return MakeToken(nfalex.TokType(typ)), nil
	case "int":
		return ConvertToken(nfalex.TokType(typ), IntValue(64)), nil
	case "float":
		return ConvertToken(nfalex.TokType(typ), FloatValue(64)), nil
	}
	return nil, fmt.Errorf("%w: unknown value conversion %q", ErrInvalidSpec, p.Value)
}

// TokTypeStringer returns a stringer for the token types of a spec.
func (spec *Spec) TokTypeStringer() nfalex.TokTypeStringer {
	byType := make(map[nfalex.TokType]string, len(spec.Tokens))
	names := maps.Keys(spec.Tokens)
	slices.Sort(names) // stable choice for duplicate ids
	for i := len(names) - 1; i >= 0; i-- {
		byType[nfalex.TokType(spec.Tokens[names[i]])] = names[i]
	}
	return func(t nfalex.TokType) string {
		if t == EOF {
			return "EOF"
		}
		if name, ok := byType[t]; ok {
			return name
		}
		return strconv.Itoa(int(t))
	}
}

// --- Regex nodes from YAML -------------------------------------------------

func yamlNode(v interface{}) (regex.Node, error) {
	m, ok := v.(map[interface{}]interface{})
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("%w: regex must be a map with a single key, is %v", ErrInvalidSpec, v)
	}
	for k, arg := range m {
		key, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("%w: regex key %v is not a string", ErrInvalidSpec, k)
		}
		return yamlOperator(key, arg)
	}
	panic("unreachable")
}

func yamlOperator(key string, arg interface{}) (regex.Node, error) {
	switch key {
	case "eps":
		return regex.Eps(), nil
	case "char":
		c, err := yamlChar(arg)
		if err != nil {
			return nil, err
		}
		return regex.Char(c), nil
	case "str", "set", "allexcept", "name":
		s, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a string, is %v", ErrInvalidSpec, key, arg)
		}
		switch key {
		case "str":
			return regex.Str(s), nil
		case "set":
			return regex.Set(s), nil
		case "allexcept":
			return regex.AllExcept([]rune(s)...), nil
		}
		return regex.Name(s), nil
	case "range":
		l, ok := arg.([]interface{})
		if !ok || len(l) != 2 {
			return nil, fmt.Errorf("%w: range expects [lo, hi], is %v", ErrInvalidSpec, arg)
		}
		lo, err := yamlChar(l[0])
		if err != nil {
			return nil, err
		}
		hi, err := yamlChar(l[1])
		if err != nil {
			return nil, err
		}
		return regex.Range(lo, hi), nil
	case "seq", "or":
		l, ok := arg.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a list, is %v", ErrInvalidSpec, key, arg)
		}
		nodes := make([]regex.Node, len(l))
		for i, x := range l {
			n, err := yamlNode(x)
			if err != nil {
				return nil, err
			}
			nodes[i] = n
		}
		if key == "seq" {
			return regex.Seq(nodes...), nil
		}
		return regex.Or(nodes...), nil
	case "star", "plus", "opt":
		inner, err := yamlNode(arg)
		if err != nil {
			return nil, err
		}
		switch key {
		case "star":
			return regex.Star(inner), nil
		case "plus":
			return regex.Plus(inner), nil
		}
		return regex.Optional(inner), nil
	}
	return nil, fmt.Errorf("%w: unknown regex operator %q", ErrInvalidSpec, key)
}

func yamlChar(v interface{}) (rune, error) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: expected a single character, is %v", ErrInvalidSpec, v)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
