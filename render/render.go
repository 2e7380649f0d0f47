// Package render draws a menu as a tree, or exports it as JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/aallbrig/verse/config"
	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/menu"
	"github.com/aallbrig/verse/models"
)

// Formats lists the accepted values of Options.Output.
var Formats = []string{"text", "json", "yaml"}

// Options controls tree rendering behavior.
type Options struct {
	Filter  string // only statements whose name contains Filter
	NoColor bool
	Output  string // text, json, yaml
	Stats   bool   // text only: append a line counting statements, flags and options
	Colors  config.ColorScheme
}

// DefaultOptions returns rendering options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Output: "text",
		Colors: config.DefaultColors(),
	}
}

// MenuTree converts m into a models.Node tree: one child per statement, and
// under each statement one child per flag and option in declaration order.
func MenuTree(m *menu.Menu) *models.Node {
	root := &models.Node{
		Kind:        models.KindMenu,
		Name:        m.Name(),
		Description: m.Description(),
	}
	for _, s := range m.Statements() {
		sn := &models.Node{
			Kind:        models.KindStatement,
			Name:        s.Name(),
			Description: s.Summary(),
			Usage:       m.Usage(s),
			Residue:     s.Residue().String(),
		}
		if s.Residue() != menu.ResidueForbidden && !s.IsGlobalHelp() {
			sn.Placeholder = s.ResiduePlaceholder()
		}
		for _, f := range s.Flags() {
			sn.Children = append(sn.Children, &models.Node{
				Kind:    models.KindFlag,
				Name:    f.Name(),
				Aliases: f.Names(),
			})
		}
		for _, o := range s.Options() {
			on := &models.Node{
				Kind:        models.KindOption,
				Name:        o.Name(),
				Aliases:     o.Names(),
				Description: o.Description(),
				Placeholder: o.Placeholder(),
				Required:    o.Required(),
				Repeatable:  o.Repeatable(),
			}
			if def, ok := o.Default(); ok {
				on.Default = &def
			}
			for _, c := range o.Constraints() {
				on.Constraints = append(on.Constraints, constraint.Describe(c))
			}
			sn.Children = append(sn.Children, on)
		}
		root.Children = append(root.Children, sn)
	}
	return root
}

// Select returns a copy of root keeping only the named statements, in the
// order given. With no names root is returned unchanged.
func Select(root *models.Node, names ...string) (*models.Node, error) {
	if len(names) == 0 {
		return root, nil
	}
	out := root.Clone()
	out.Children = nil
	for _, name := range names {
		child := root.Find(name)
		if child == nil || child.Kind != models.KindStatement {
			return nil, fmt.Errorf("no statement named %q", name)
		}
		out.Children = append(out.Children, child.Clone())
	}
	return out, nil
}

// Renderer renders a menu tree.
type Renderer struct {
	opts   Options
	styles styles
}

type styles struct {
	base        lipgloss.Style
	statement   lipgloss.Style
	flag        lipgloss.Style
	option      lipgloss.Style
	placeholder lipgloss.Style
	constraint  lipgloss.Style
	dim         lipgloss.Style
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	r := &Renderer{opts: opts}
	if opts.NoColor {
		plain := lipgloss.NewStyle()
		r.styles = styles{
			base:        plain,
			statement:   plain,
			flag:        plain,
			option:      plain,
			placeholder: plain,
			constraint:  plain,
			dim:         plain,
		}
	} else {
		r.styles = styles{
			base:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(opts.Colors.Base)),
			statement:   lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Statement)),
			flag:        lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Flag)),
			option:      lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Option)),
			placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Placeholder)),
			constraint:  lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Constraint)),
			dim:         lipgloss.NewStyle().Faint(true),
		}
	}
	return r
}

// Render writes the tree to w.
func (r *Renderer) Render(w io.Writer, root *models.Node) error {
	root = r.filtered(root)
	switch r.opts.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "text", "":
		r.renderNode(w, root, "", true, 0)
		if r.opts.Stats {
			fmt.Fprintln(w, r.styles.dim.Render(Collect(root).String()))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", r.opts.Output)
	}
}

// filtered drops statements that do not match Options.Filter. The root is
// always kept.
func (r *Renderer) filtered(root *models.Node) *models.Node {
	if r.opts.Filter == "" {
		return root
	}
	out := root.Clone()
	out.Children = nil
	for _, child := range root.Children {
		if strings.Contains(child.Name, r.opts.Filter) {
			out.Children = append(out.Children, child.Clone())
		}
	}
	return out
}

const (
	iconBranch  = "▼ "
	iconLeaf    = "• "
	connLast    = "└── "
	connMid     = "├── "
	connLastPad = "    "
	connMidPad  = "│   "
)

func (r *Renderer) renderNode(w io.Writer, node *models.Node, prefix string, isLast bool, depth int) {
	conn := connMid
	if isLast {
		conn = connLast
	}
	icon := iconBranch
	if node.IsLeaf() {
		icon = iconLeaf
	}

	line := prefix
	if depth > 0 {
		line += conn
	}
	line += icon + r.label(node)
	if node.Description != "" {
		line += "  " + r.styles.dim.Render(node.Description)
	}
	fmt.Fprintln(w, line)

	childPrefix := prefix
	if depth > 0 {
		if isLast {
			childPrefix += connLastPad
		} else {
			childPrefix += connMidPad
		}
	}
	for i, child := range node.Children {
		r.renderNode(w, child, childPrefix, i == len(node.Children)-1, depth+1)
	}
}

// label formats a node's name and inline metadata.
func (r *Renderer) label(node *models.Node) string {
	switch node.Kind {
	case models.KindMenu:
		return r.styles.base.Render(node.Name)
	case models.KindStatement:
		s := r.styles.statement.Render(node.Name)
		if node.Placeholder != "" {
			p := node.Placeholder + "..."
			if node.Residue != menu.ResidueRequired.String() {
				p = "[" + p + "]"
			}
			s += " " + r.styles.placeholder.Render(p)
		}
		return s
	case models.KindFlag:
		return r.styles.flag.Render(aliases(node.Aliases))
	case models.KindOption:
		s := r.styles.option.Render(aliases(node.Aliases)) + " " + r.styles.placeholder.Render(node.Placeholder)
		var meta []string
		if node.Required {
			meta = append(meta, "required")
		}
		if node.Repeatable {
			meta = append(meta, "repeatable")
		}
		meta = append(meta, node.Constraints...)
		if node.Default != nil {
			meta = append(meta, "default="+*node.Default)
		}
		if len(meta) > 0 {
			s += " " + r.styles.constraint.Render("("+strings.Join(meta, ", ")+")")
		}
		return s
	default:
		return node.Name
	}
}

func aliases(names []string) string {
	shown := make([]string, len(names))
	for i, n := range names {
		shown[i] = menu.Display(n)
	}
	return strings.Join(shown, ",")
}

// RenderToString renders the tree to a string.
func RenderToString(root *models.Node, opts Options) (string, error) {
	var sb strings.Builder
	r := New(opts)
	if err := r.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Stats counts the parts of a menu tree.
type Stats struct {
	Statements int
	Flags      int
	Options    int
}

func (s Stats) String() string {
	return fmt.Sprintf("%s, %s, %s",
		plural(s.Statements, "statement"), plural(s.Flags, "flag"), plural(s.Options, "option"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Collect gathers stats from a tree.
func Collect(root *models.Node) Stats {
	return Stats{
		Statements: root.Count(models.KindStatement),
		Flags:      root.Count(models.KindFlag),
		Options:    root.Count(models.KindOption),
	}
}
