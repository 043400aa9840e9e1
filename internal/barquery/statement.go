package barquery

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrNoHeader indicates that the statement text does not start with a name header.
	ErrNoHeader = errors.New("statement has no name header")
	// ErrNotStruct indicates that the params type of a statement is not a struct.
	ErrNotStruct = errors.New("statement params must be a struct")
)

// Statement is a named SQL template bound to its params type P.
//
// The template uses :name placeholders. Prepare rewrites them into positional
// ones and resolves every position to a field of P, so binding a value at call
// time is a plain slice build.
type Statement[P any] struct {
	// Name is the statement name from the "-- name: X :cmd" header.
	Name string
	// Cmd is the result kind from the header, e.g. ":execrows".
	Cmd string
	// Text is the template as declared.
	Text string
	// SQL is the template with placeholders rewritten to $1, $2, ...
	SQL string

	binds []int
}

// MustPrepare is like Prepare but panics if the template does not match P.
func MustPrepare[P any](text string) *Statement[P] {
	s, err := Prepare[P](text)
	if err != nil {
		panic(err)
	}

	return s
}

// Prepare parses text and checks that its placeholders match the db tags of P
// one to one.
func Prepare[P any](text string) (*Statement[P], error) {
	var zero P

	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	name, cmd, err := parseHeader(text)
	if err != nil {
		return nil, err
	}

	fields, err := bindFields(typ)
	if err != nil {
		return nil, err
	}

	sql, names := rewrite(text)

	s := &Statement[P]{
		Name:  name,
		Cmd:   cmd,
		Text:  text,
		SQL:   sql,
		binds: make([]int, len(names)),
	}

	used := make(map[string]bool, len(names))

	for i, n := range names {
		idx, ok := fields[n]
		if !ok {
			return nil, fmt.Errorf("%s: placeholder :%s has no field in %s", name, n, typ)
		}

		s.binds[i] = idx
		used[n] = true
	}

	for n := range fields {
		if !used[n] {
			return nil, fmt.Errorf("%s: field %q of %s is not bound", name, n, typ)
		}
	}

	return s, nil
}

// Bind returns the positional arguments for arg.
func (s *Statement[P]) Bind(arg P) []any {
	v := reflect.ValueOf(arg)

	args := make([]any, len(s.binds))
	for i, idx := range s.binds {
		args[i] = v.Field(idx).Interface()
	}

	return args
}

func parseHeader(text string) (name, cmd string, err error) {
	line, _, _ := strings.Cut(strings.TrimLeft(text, " \t\r\n"), "\n")

	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "-- name:")
	if !ok {
		return "", "", ErrNoHeader
	}

	parts := strings.Fields(rest)
	if len(parts) != 2 || !strings.HasPrefix(parts[1], ":") {
		return "", "", ErrNoHeader
	}

	return parts[0], parts[1], nil
}

// bindFields maps placeholder names to field indexes of typ.
// A field binds to its db tag, or to its lower-cased name when untagged.
func bindFields(typ reflect.Type) (map[string]int, error) {
	fields := make(map[string]int, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}

		n := f.Tag.Get("db")
		if n == "-" {
			continue
		}

		if n == "" {
			n = strings.ToLower(f.Name)
		}

		if _, dup := fields[n]; dup {
			return nil, fmt.Errorf("%s: duplicate bind name %q", typ, n)
		}

		fields[n] = i
	}

	return fields, nil
}

// rewrite replaces :name placeholders with $N and returns the names in
// positional order. A name used twice keeps its first number. Casts (::),
// quoted text and comments are copied through untouched.
func rewrite(text string) (string, []string) {
	var (
		sb    strings.Builder
		names []string
	)

	pos := map[string]int{}

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == '\'' || c == '"':
			end := closing(text, i+1, c)
			sb.WriteString(text[i:end])
			i = end

		case c == '-' && strings.HasPrefix(text[i:], "--"):
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				end = len(text) - i
			}
			sb.WriteString(text[i : i+end])
			i += end

		case c == '/' && strings.HasPrefix(text[i:], "/*"):
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				end = len(text)
			} else {
				end = i + 2 + end + 2
			}
			sb.WriteString(text[i:end])
			i = end

		case c == ':' && strings.HasPrefix(text[i:], "::"):
			sb.WriteString("::")
			i += 2

		case c == ':' && i+1 < len(text) && isIdentStart(text[i+1]):
			j := i + 1
			for j < len(text) && isIdent(text[j]) {
				j++
			}

			n := text[i+1 : j]

			p, ok := pos[n]
			if !ok {
				names = append(names, n)
				p = len(names)
				pos[n] = p
			}

			sb.WriteString("$" + strconv.Itoa(p))
			i = j

		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), names
}

// closing returns the index just past the quote q that closes a literal
// starting at i. Doubled quotes are escapes.
func closing(text string, i int, q byte) int {
	for i < len(text) {
		if text[i] == q {
			if i+1 < len(text) && text[i+1] == q {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}

	return len(text)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
