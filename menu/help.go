package menu

import (
	"runtime"
	"strings"

	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/contract"
)

// lineSeparator returns the host platform's newline.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// RenderHelp returns the full help screen. The output depends only on the
// menu, so repeated calls return identical strings.
func (m *Menu) RenderHelp() string {
	eol := lineSeparator()
	var b strings.Builder
	b.WriteString(m.name + " -- " + m.description + eol)
	b.WriteString(eol)
	for i, s := range m.statements {
		if i > 0 {
			b.WriteString(eol)
		}
		m.describe(&b, s, eol)
	}
	if m.epilogue != "" {
		b.WriteString(eol)
		b.WriteString(m.epilogue + eol)
	}
	return b.String()
}

// RenderStatementHelp returns the help extract for the statement called name.
func (m *Menu) RenderStatementHelp(name string) (string, error) {
	if err := contract.NotEmpty(contract.Precondition, name, "statement name"); err != nil {
		return "", err
	}
	s := m.Statement(name)
	if s == nil {
		return "", &InvocationError{Kind: UnknownCommand, Token: name}
	}
	var b strings.Builder
	m.describe(&b, s, lineSeparator())
	return b.String(), nil
}

// Usage returns the one-line synopsis of s, starting with the program name.
func (m *Menu) Usage(s *Statement) string {
	parts := []string{m.name}
	if s.verb != "" {
		parts = append(parts, s.verb)
	}
	for _, f := range s.flags {
		parts = append(parts, "["+Display(f.Name())+"]")
	}
	for _, o := range s.options {
		p := Display(o.Name()) + " " + o.placeholder
		if !o.required {
			p = "[" + p + "]"
		}
		if o.repeatable {
			p += "..."
		}
		parts = append(parts, p)
	}
	switch {
	case s.residue == ResidueRequired && s.maxResidue == 1:
		parts = append(parts, s.residueOf)
	case s.residue == ResidueRequired:
		parts = append(parts, s.residueOf+"...")
	case s.residue == ResidueAllowed && s.kind != kindGlobalHelp:
		parts = append(parts, "["+s.residueOf+"...]")
	}
	return strings.Join(parts, " ")
}

func (m *Menu) describe(b *strings.Builder, s *Statement, eol string) {
	const (
		usageIndent  = "  "
		optionIndent = "    "
		detailIndent = "        "
	)
	b.WriteString(s.name + eol)
	b.WriteString(eol)
	b.WriteString(usageIndent + m.Usage(s) + eol)
	if s.summary != "" {
		b.WriteString(optionIndent + s.summary + eol)
	}
	for _, o := range s.options {
		aliases := make([]string, len(o.names))
		for i, n := range o.names {
			aliases[i] = Display(n)
		}
		b.WriteString(optionIndent + strings.Join(aliases, ", ") + " " + o.placeholder + eol)
		if o.description != "" {
			b.WriteString(detailIndent + o.description + eol)
		}
		for _, c := range o.constraints {
			b.WriteString(detailIndent + "must satisfy: " + constraint.Describe(c) + eol)
		}
		if o.hasDefault {
			b.WriteString(detailIndent + "default: " + o.def + eol)
		}
	}
}
