package help

import (
	"fmt"
	"strings"
)

// row is one aligned "name  description" line.
type row struct {
	name, desc string
}

// FormatTerminal renders a subcommand's help text for terminal --help output.
func FormatTerminal(c Command) string {
	sections := []string{
		fmt.Sprintf("qv %s \u2014 %s", c.Name, c.Synopsis),
		"Usage: " + c.Usage,
	}

	args := make([]row, len(c.Args))
	for i, a := range c.Args {
		args[i] = row{a.Name, a.Desc}
	}
	flags := make([]row, len(c.Flags))
	for i, f := range c.Flags {
		flags[i] = row{f.Name, f.Desc}
	}

	// Arguments and flags share one description column, at least column 13
	// when both are present.
	col := nameWidth(args, flags) + 3
	if len(args) > 0 && len(flags) > 0 {
		col = max(col, 11)
	}
	if len(args) > 0 {
		sections = append(sections, "Arguments:\n"+columns(args, col))
	}
	if len(flags) > 0 {
		sections = append(sections, "Flags:\n"+columns(flags, col))
	}

	if c.Description != "" {
		sections = append(sections, c.Description)
	}
	if len(c.Examples) > 0 {
		sections = append(sections, "Examples:\n  "+strings.Join(c.Examples, "\n  "))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// FormatUsage renders the top-level usage text (for qv --help / qv help).
func FormatUsage(top Command, subs []Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "qv v%s \u2014 %s\n", Version, top.Synopsis)
	if top.Description != "" {
		b.WriteString("\n" + top.Description + "\n")
	}

	table := make([]row, 0, len(subs)+1)
	for _, s := range subs {
		table = append(table, row{s.tableUsage(), s.Brief})
	}
	table = append(table, row{"qv help", "Show this help"})
	b.WriteString("\nUsage:\n")
	b.WriteString(columns(table, nameWidth(table)+3) + "\n")

	for _, n := range top.Notes {
		fmt.Fprintf(&b, "\n%s: %s\n", n.Title, n.Body)
	}
	return b.String()
}

func nameWidth(groups ...[]row) int {
	w := 0
	for _, g := range groups {
		for _, r := range g {
			w = max(w, len(r.name))
		}
	}
	return w
}

// columns lays out rows indented by two spaces, descriptions starting col
// characters past the indent. No trailing newline.
func columns(rows []row, col int) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %-*s%s", col, r.name, r.desc)
	}
	return b.String()
}
