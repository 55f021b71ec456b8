package help

import "strings"

// Version is the qv release version, set at build time via -ldflags.
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "--json" or "--init"
	Desc string
}

// Arg describes a positional argument.
type Arg struct {
	Name     string // e.g. "responses.json"
	Desc     string
	Optional bool
}

// Note is a titled block of top-level help, e.g. exit status or config path.
type Note struct {
	Title string
	Body  string
}

// Command describes a qv subcommand (or the top-level binary when Name is "").
type Command struct {
	Name        string   // "validate", "score", etc; "" for top-level
	Synopsis    string   // one-line description (lowercase, for --help header)
	Brief       string   // short description for usage table (capitalized)
	Usage       string   // full usage line, e.g. "qv score <responses> [--json]"
	TableUsage  string   // shortened usage for the top-level table (if different from Usage)
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	SeeAlso     []string // man page cross-refs, e.g. "qv(1)"
	Notes       []Note   // top-level only
}

// tableUsage returns TableUsage if set, otherwise Usage.
func (c Command) tableUsage() string {
	if c.TableUsage != "" {
		return c.TableUsage
	}
	return c.Usage
}

// ManName returns the man page name: "qv" for top-level, "qv-<name>" for subs.
func (c Command) ManName() string {
	if c.Name == "" {
		return "qv"
	}
	return "qv-" + strings.ReplaceAll(c.Name, " ", "-")
}

// TopLevel is the top-level qv command (used by FormatUsage).
var TopLevel = Command{
	Name:     "",
	Synopsis: "quiz scoring validator",
	Description: `qv checks the relationship quiz scoring engine against a fixed set of
known answers and scores saved response sets. With no command it runs
the validation suite and exits non-zero on any failure.`,
	Notes: []Note{
		{Title: "Exit status", Body: "0 when every check passes, 1 otherwise."},
		{Title: "Configuration", Body: "~/.config/qv/config.toml"},
	},
}

var CmdValidate = Command{
	Name:     "validate",
	Synopsis: "run the scoring validation suite",
	Brief:    "Run the scoring validation suite (default)",
	Usage:    "qv validate [--json]",
	Flags: []Flag{
		{Name: "--json", Desc: "Print the report as JSON"},
	},
	Description: `Runs every fixed test case against the scoring engine: normalization,
reverse scoring, the attachment, communication, confidence, emotional,
intimacy and love-language scorers, the archetype decision table, and a
full integration profile.

The text report lists each case as pass or FAIL, with expected and
actual values for failures. The JSON report carries a summary block
and one entry per case.

Running qv with no command, or with only --json, is the same as
qv validate. Exit code 0 if every case passes, 1 otherwise.`,
	Examples: []string{
		"qv                  Run the suite, text report",
		"qv --json           Run the suite, JSON report",
		"qv validate --json  Same as above",
	},
	SeeAlso: []string{"qv(1)", "qv-score(1)"},
}

var CmdScore = Command{
	Name:       "score",
	Synopsis:   "score a saved response set",
	Brief:      "Score a saved response set",
	Usage:      "qv score <responses> [--json] [--format FMT]",
	TableUsage: "qv score <file|->",
	Args: []Arg{
		{Name: "responses", Desc: "JSON or YAML answers file, optionally .zst; - reads stdin"},
	},
	Flags: []Flag{
		{Name: "--json", Desc: "Print the scorecard as JSON"},
		{Name: "--format FMT", Desc: "Input format: auto (default), json or yaml"},
	},
	Description: `Decodes a response set and prints its scorecard: archetype, attachment
and communication profiles, trait scores and ranked love languages.

Answers may be plain integers 1-5, numeric strings, or objects of the
form {"value": n, "selectedKey": "X"}, either at the top level or under
an "answers" key. The communication scenario takes its option key
(A-D). Relative paths resolve against input.dir from the config.

The format follows the file name: .yaml and .yml (with or without .zst)
are YAML, anything else is JSON. Stdin is read as JSON unless
--format yaml is given.

Unknown question ids are reported on stderr when input.warn_unknown is
set and are otherwise ignored.`,
	Examples: []string{
		"qv score answers.json                   Text scorecard",
		"qv score answers.yaml.zst --json        Compressed YAML, JSON output",
		"cat answers.json | qv score -           Read from stdin",
		"cat answers.yaml | qv score - --format yaml",
	},
	SeeAlso: []string{"qv(1)", "qv-validate(1)", "qv-archetypes(1)"},
}

var CmdStats = Command{
	Name:       "stats",
	Synopsis:   "summarize many response sets",
	Brief:      "Summarize many response sets",
	Usage:      "qv stats <responses>... [--json] [--format FMT]",
	TableUsage: "qv stats <file>...",
	Args: []Arg{
		{Name: "responses", Desc: "One or more response files, in any format qv score accepts"},
	},
	Flags: []Flag{
		{Name: "--json", Desc: "Print the summary as JSON"},
		{Name: "--format FMT", Desc: "Force the input format for every file"},
	},
	Description: `Scores every response set and reports cohort totals: how many are
complete, average trait scores, and how often each archetype,
attachment style, communication style and top love language occurs.

Files that fail to decode stop the run with an error naming the file.`,
	Examples: []string{
		"qv stats responses/*.json          Summarize a directory",
		"qv stats a.json b.yaml.zst --json  Mixed formats, JSON output",
	},
	SeeAlso: []string{"qv(1)", "qv-score(1)"},
}

var CmdArchetypes = Command{
	Name:     "archetypes",
	Synopsis: "list archetype definitions",
	Brief:    "List archetype definitions",
	Usage:    "qv archetypes [--json]",
	Flags: []Flag{
		{Name: "--json", Desc: "Print the definitions as JSON"},
	},
	Description: `Prints every archetype the decision table can produce, with its
summary, strengths and growth areas.`,
	SeeAlso: []string{"qv(1)", "qv-score(1)"},
}

var CmdConfig = Command{
	Name:     "config",
	Synopsis: "show or create the config file",
	Brief:    "Show or create the config file",
	Usage:    "qv config [--init]",
	Flags: []Flag{
		{Name: "--init", Desc: "Write a default config.toml if none exists"},
	},
	Description: `Prints the config file in use and the effective settings. With --init,
writes a default config to ~/.config/qv/config.toml (or under
$XDG_CONFIG_HOME) unless one already exists.`,
	SeeAlso: []string{"qv(1)"},
}

var CmdVersion = Command{
	Name:     "version",
	Synopsis: "print version",
	Brief:    "Print version",
	Usage:    "qv version",
	SeeAlso:  []string{"qv(1)"},
}

// Subcommands is the ordered list of all subcommands.
var Subcommands = []Command{
	CmdValidate,
	CmdScore,
	CmdStats,
	CmdArchetypes,
	CmdConfig,
	CmdVersion,
}
