package help

import (
	"fmt"
	"strings"
	"time"
)

const manual = "Quiz Validator Manual"

// man accumulates a roff page section by section.
type man struct {
	strings.Builder
}

// header writes .TH; an empty date means today.
func (m *man) header(title, date string) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	fmt.Fprintf(m, ".TH %s 1 %q %q %q\n", strings.ToUpper(title), date, "qv "+Version, manual)
}

func (m *man) section(title string) {
	m.WriteString(".SH " + strings.ToUpper(title) + "\n")
}

// paragraphs writes prose, turning blank lines into .PP breaks.
func (m *man) paragraphs(text string) {
	blank := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if !blank {
				m.WriteString(".PP\n")
			}
			blank = true
			continue
		}
		blank = false
		m.WriteString(escapeRoff(line) + "\n")
	}
}

// item writes a tagged paragraph.
func (m *man) item(tag, text string) {
	fmt.Fprintf(m, ".TP\n.B %s\n%s\n", tag, escapeRoff(text))
}

func (m *man) seeAlso(refs []string) {
	if len(refs) == 0 {
		return
	}
	m.section("see also")
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = formatManRef(ref)
	}
	m.WriteString(strings.Join(out, ",\n") + "\n")
}

// FormatRoff renders a subcommand as a man page. Pass a fixed date for
// reproducible output.
func FormatRoff(c Command, date string) string {
	var m man
	m.header(c.ManName(), date)

	m.section("name")
	fmt.Fprintf(&m, "%s \\- %s\n", c.ManName(), escapeRoff(c.Synopsis))
	m.section("synopsis")
	m.WriteString(".B " + escapeRoff(c.Usage) + "\n")

	if c.Description != "" {
		m.section("description")
		m.paragraphs(c.Description)
	}
	if len(c.Args) > 0 || len(c.Flags) > 0 {
		m.section("options")
		for _, a := range c.Args {
			m.item(escapeRoff(a.Name), a.Desc)
		}
		for _, f := range c.Flags {
			m.item(escapeRoff(f.Name), f.Desc)
		}
	}
	if len(c.Examples) > 0 {
		m.section("examples")
		m.WriteString(".nf\n")
		for _, e := range c.Examples {
			m.WriteString(escapeRoff(e) + "\n")
		}
		m.WriteString(".fi\n")
	}
	m.seeAlso(c.SeeAlso)
	return m.String()
}

// FormatRoffTopLevel renders qv.1: the top-level description and notes plus
// one COMMANDS entry per subcommand.
func FormatRoffTopLevel(top Command, subs []Command, date string) string {
	var m man
	m.header("qv", date)

	m.section("name")
	fmt.Fprintf(&m, "qv \\- %s\n", escapeRoff(top.Synopsis))
	m.section("synopsis")
	m.WriteString(".B qv\n.RI [ command ]\n.RI [ options ]\n")

	if top.Description != "" {
		m.section("description")
		m.paragraphs(top.Description)
	}

	m.section("commands")
	for _, s := range subs {
		m.item(`"`+escapeRoff(s.tableUsage())+`"`, s.Brief)
	}

	for _, n := range top.Notes {
		m.section(n.Title)
		m.paragraphs(n.Body)
	}

	refs := make([]string, len(subs))
	for i, s := range subs {
		refs[i] = s.ManName() + "(1)"
	}
	m.seeAlso(refs)
	return m.String()
}

// escapeRoff escapes backslashes, line-leading dots and hyphens.
func escapeRoff(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n.", "\n\\&.")
	if strings.HasPrefix(s, ".") {
		s = "\\&" + s
	}
	return strings.ReplaceAll(s, "-", "\\-")
}

// formatManRef turns "qv-score(1)" into ".BR qv\-score (1)".
func formatManRef(ref string) string {
	name, section, ok := strings.Cut(ref, "(")
	if !ok {
		return ".B " + escapeRoff(ref)
	}
	return fmt.Sprintf(".BR %s (%s", escapeRoff(name), section)
}
