package modules

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// typeParser reads type expressions of the form
//
//	type := "*" | name [ "<" type { "," type } ">" ] [ "?" ]
//
// Names listed in typeParams become type parameters; every other name is a
// class reference reserved in the session, so it may be declared later.
type typeParser struct {
	input      string
	pos        int
	session    *symbols.Session
	typeParams map[string]bool
}

func parseType(input string, session *symbols.Session, typeParams []string) (typesystem.Type, error) {
	p := &typeParser{input: input, session: session, typeParams: make(map[string]bool, len(typeParams))}
	for _, name := range typeParams {
		p.typeParams[name] = true
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("type %q: unexpected %q at offset %d", input, p.input[p.pos:], p.pos)
	}
	return t, nil
}

func (p *typeParser) parseType() (typesystem.Type, error) {
	p.skipSpaces()
	if p.peek() == '*' {
		p.pos++
		return typesystem.StarProjection, nil
	}
	name := p.readName()
	if name == "" {
		return nil, fmt.Errorf("type %q: expected a name at offset %d", p.input, p.pos)
	}

	var args []typesystem.Type
	p.skipSpaces()
	if p.peek() == '<' {
		p.pos++
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			p.skipSpaces()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			if p.peek() != '>' {
				return nil, fmt.Errorf("type %q: expected ',' or '>' at offset %d", p.input, p.pos)
			}
			p.pos++
			break
		}
	}

	p.skipSpaces()
	nullable := false
	if p.peek() == '?' {
		p.pos++
		nullable = true
	}

	if p.typeParams[name] {
		if len(args) > 0 {
			return nil, fmt.Errorf("type %q: type parameter %s cannot take arguments", p.input, name)
		}
		return typesystem.TypeParameterType{Name: name, Nullable: nullable}, nil
	}
	return typesystem.ClassType{Tag: p.session.Reserve(name), Args: args, Nullable: nullable}, nil
}

// readName reads a dotted name. Every segment starts with a letter or '_'
// and continues with letters, digits or '_'. It returns "" when no valid name
// starts at the current offset, leaving the offset where the name began.
func (p *typeParser) readName() string {
	start := p.pos
	segmentStart := true
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		switch {
		case r == '.' && !segmentStart:
			segmentStart = true
		case r == '_' || unicode.IsLetter(r):
			segmentStart = false
		case unicode.IsDigit(r) && !segmentStart:
		default:
			if segmentStart && p.pos > start {
				// trailing dot
				p.pos = start
				return ""
			}
			return p.input[start:p.pos]
		}
		p.pos += size
	}
	if segmentStart && p.pos > start {
		p.pos = start
		return ""
	}
	return p.input[start:p.pos]
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
