package menu

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// helpTokens are reserved for the global help statement.
var helpTokens = map[string]bool{"--help": true, "-h": true, "-?": true}

// optionLike reports whether tok would be read as a flag or option rather
// than a value. A lone "-" is a value (conventionally stdin).
func optionLike(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// TryParse parses argv against this statement alone. It returns ErrNoMatch
// when argv does not belong to the statement, an *InvocationError when it does
// but is malformed, and the Invocation otherwise.
func (s *Statement) TryParse(argv []string) (*Invocation, error) {
	if s.kind == kindGlobalHelp {
		return s.parseGlobalHelp(argv)
	}
	tokens, ok := s.claim(argv)
	if !ok {
		return nil, ErrNoMatch
	}
	p := &parser{stmt: s, inv: newInvocation(s), seen: map[*Option]bool{}}
	if err := p.run(tokens); err != nil {
		return nil, err
	}
	return p.inv, nil
}

func (s *Statement) parseGlobalHelp(argv []string) (*Invocation, error) {
	inv := newInvocation(s)
	if len(argv) == 0 {
		return inv, nil
	}
	if !helpTokens[argv[0]] {
		return nil, ErrNoMatch
	}
	for _, f := range s.flags {
		inv.flags[f] = true
	}
	inv.rest = append(inv.rest, argv[1:]...)
	return inv, nil
}

// claim decides whether argv belongs to s and returns the tokens left to parse.
func (s *Statement) claim(argv []string) ([]string, bool) {
	if s.verb != "" {
		if len(argv) == 0 || argv[0] != s.verb {
			return nil, false
		}
		return argv[1:], true
	}
	if len(argv) == 0 {
		if s.residue == ResidueRequired {
			return nil, false
		}
		for _, o := range s.options {
			if o.required {
				return nil, false
			}
		}
		return argv, true
	}
	first := argv[0]
	switch {
	case first == "--" || !optionLike(first):
		return argv, s.residue != ResidueForbidden
	case strings.HasPrefix(first, "--"):
		name, _, _ := strings.Cut(first[2:], "=")
		f, o := s.lookup(name)
		return argv, f != nil || o != nil
	default:
		r, _ := utf8.DecodeRuneInString(first[1:])
		f, o := s.lookup(string(r))
		return argv, f != nil || o != nil
	}
}

type parser struct {
	stmt *Statement
	inv  *Invocation
	seen map[*Option]bool
}

func (p *parser) fail(e *InvocationError) error {
	e.Statement = p.stmt.name
	return e
}

func (p *parser) run(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			for _, r := range tokens[i+1:] {
				if err := p.positional(r); err != nil {
					return err
				}
			}
			i = len(tokens)
		case strings.HasPrefix(tok, "--"):
			n, err := p.long(tok, tokens[i+1:])
			if err != nil {
				return err
			}
			i += n
		case optionLike(tok):
			n, err := p.short(tok, tokens[i+1:])
			if err != nil {
				return err
			}
			i += n
		default:
			if err := p.positional(tok); err != nil {
				return err
			}
		}
	}
	return p.finish()
}

func (p *parser) positional(tok string) error {
	if p.stmt.residue == ResidueForbidden {
		return p.fail(&InvocationError{Kind: UnexpectedPositional, Token: tok})
	}
	p.inv.rest = append(p.inv.rest, tok)
	return nil
}

// long handles "--name", "--name=value" and "--name value". It returns how
// many of the following tokens it consumed.
func (p *parser) long(tok string, next []string) (int, error) {
	name, value, hasValue := strings.Cut(tok[2:], "=")
	f, o := p.stmt.lookup(name)
	switch {
	case f != nil:
		if hasValue {
			return 0, p.fail(&InvocationError{Kind: UnexpectedValue, Name: f.Name(), Token: tok})
		}
		p.inv.flags[f] = true
		return 0, nil
	case o != nil:
		if hasValue {
			return 0, p.assign(o, value)
		}
		return p.valueFrom(o, next)
	default:
		return 0, p.fail(&InvocationError{Kind: UnknownOption, Token: "--" + name})
	}
}

// short handles a cluster such as "-vo PATH", "-vPATH" or "-o=PATH".
func (p *parser) short(tok string, next []string) (int, error) {
	cluster := tok[1:]
	for j := 0; j < len(cluster); {
		r, size := utf8.DecodeRuneInString(cluster[j:])
		alias := string(r)
		remainder := cluster[j+size:]
		f, o := p.stmt.lookup(alias)
		switch {
		case f != nil:
			if strings.HasPrefix(remainder, "=") {
				return 0, p.fail(&InvocationError{Kind: UnexpectedValue, Name: f.Name(), Token: tok})
			}
			p.inv.flags[f] = true
		case o != nil:
			if remainder != "" {
				return 0, p.assign(o, strings.TrimPrefix(remainder, "="))
			}
			return p.valueFrom(o, next)
		default:
			return 0, p.fail(&InvocationError{Kind: UnknownOption, Token: "-" + alias})
		}
		j += size
	}
	return 0, nil
}

// valueFrom takes o's value from the next token, which must not look like an
// option itself.
func (p *parser) valueFrom(o *Option, next []string) (int, error) {
	if len(next) == 0 || optionLike(next[0]) {
		return 0, p.fail(&InvocationError{Kind: MissingValue, Name: o.Name()})
	}
	return 1, p.assign(o, next[0])
}

func (p *parser) assign(o *Option, raw string) error {
	if p.seen[o] && !o.repeatable {
		return p.fail(&InvocationError{Kind: DuplicateOption, Name: o.Name(), Token: raw})
	}
	v, err := o.Accept(raw)
	var ie *InvocationError
	if errors.As(err, &ie) {
		return p.fail(ie)
	} else if err != nil {
		return err
	}
	p.seen[o] = true
	p.inv.values[o] = append(p.inv.values[o], v)
	return nil
}

func (p *parser) finish() error {
	for _, o := range p.stmt.options {
		if p.seen[o] {
			continue
		}
		if o.required {
			return p.fail(&InvocationError{Kind: MissingRequired, Name: o.Name()})
		}
		if o.hasDefault {
			p.inv.values[o] = []string{o.def}
		}
	}
	rest := p.inv.rest
	if p.stmt.residue == ResidueRequired && len(rest) == 0 {
		return p.fail(&InvocationError{Kind: MissingPositional, Name: p.stmt.residueOf})
	}
	if limit := p.stmt.maxResidue; limit > 0 && len(rest) > limit {
		return p.fail(&InvocationError{Kind: UnexpectedPositional, Token: rest[limit]})
	}
	return nil
}
