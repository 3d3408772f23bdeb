package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
)

// UsageError reports a command that was called with bad arguments
type UsageError struct {
	Usage  string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s (usage: %s)", e.Reason, e.Usage)
}

type command struct {
	usage string
	help  string
	run   func(c *Controller, ctx context.Context, args []string) error
}

// commands is filled in init because the help command reads it
var commands map[string]command

func init() {
	commands = map[string]command{
		"load": {
			usage: "load <path>",
			help:  "import a JSON array of jobs, replacing the current list",
			run: func(c *Controller, ctx context.Context, args []string) error {
				if len(args) != 1 {
					return &UsageError{Usage: "load <path>", Reason: "expected one path"}
				}
				return c.Load(ctx, args[0])
			},
		},
		"filter": {
			usage: "filter [level] [type] [skill] | filter level=X type=Y skill=Z",
			help:  "show jobs matching every selector (All matches anything)",
			run: func(c *Controller, _ context.Context, args []string) error {
				sel, err := ParseSelection(args)
				if err != nil {
					return err
				}
				c.Filter(sel)
				return nil
			},
		},
		"sort": {
			usage: "sort title|time",
			help:  "sort the current list by title or by posting age",
			run: func(c *Controller, _ context.Context, args []string) error {
				if len(args) != 1 {
					return &UsageError{Usage: "sort title|time", Reason: "expected a sort key"}
				}
				key, ok := models.ParseSortKey(args[0])
				if !ok {
					return &UsageError{Usage: "sort title|time", Reason: fmt.Sprintf("unknown sort key %q", args[0])}
				}
				return c.Sort(key)
			},
		},
		"reset": {
			usage: "reset",
			help:  "clear filters and sorting",
			run: func(c *Controller, _ context.Context, _ []string) error {
				c.Reset()
				return nil
			},
		},
		"list": {
			usage: "list",
			help:  "show the current list",
			run: func(c *Controller, _ context.Context, _ []string) error {
				c.List()
				return nil
			},
		},
		"show": {
			usage: "show <id>",
			help:  "show every field of one job",
			run: func(c *Controller, _ context.Context, args []string) error {
				if len(args) != 1 {
					return &UsageError{Usage: "show <id>", Reason: "expected a job ID"}
				}
				id, err := strconv.Atoi(strings.Trim(args[0], "[]"))
				if err != nil {
					return &UsageError{Usage: "show <id>", Reason: fmt.Sprintf("invalid job ID %q", args[0])}
				}
				return c.Show(id)
			},
		},
		"find": {
			usage: "find <title words>",
			help:  "search all job titles",
			run: func(c *Controller, _ context.Context, args []string) error {
				if len(args) == 0 {
					return &UsageError{Usage: "find <title words>", Reason: "expected a search query"}
				}
				c.Find(strings.Join(args, " "))
				return nil
			},
		},
		"options": {
			usage: "options",
			help:  "list the values available to filter on",
			run: func(c *Controller, _ context.Context, _ []string) error {
				c.Options()
				return nil
			},
		},
		"summary": {
			usage: "summary",
			help:  "count the current list by level, type and skill",
			run: func(c *Controller, _ context.Context, _ []string) error {
				c.Summary()
				return nil
			},
		},
		"help": {
			usage: "help",
			help:  "show this help",
			run: func(c *Controller, _ context.Context, _ []string) error {
				c.renderer.Message(Help())
				return nil
			},
		},
		"quit": {
			usage: "quit",
			help:  "end the session",
			run: func(*Controller, context.Context, []string) error {
				return ErrQuit
			},
		},
	}
}

var aliases = map[string]string{
	"exit": "quit",
	"q":    "quit",
	"ls":   "list",
	"open": "load",
}

// Help returns the command reference
func Help() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(&b, "  %-62s %s\n", cmd.usage, cmd.help)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ParseSelection reads filter arguments, either positional (level, type,
// skill) or as key=value pairs. Missing selectors default to All.
func ParseSelection(args []string) (models.Selection, error) {
	const usage = "filter [level] [type] [skill] | filter level=X type=Y skill=Z"
	sel := models.AllSelection()

	keyed := false
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			keyed = true
			break
		}
	}

	if !keyed {
		if len(args) > 3 {
			return sel, &UsageError{Usage: usage, Reason: "too many selectors"}
		}
		fields := []*string{&sel.Level, &sel.Type, &sel.Skill}
		for i, arg := range args {
			*fields[i] = arg
		}
		return sel.Normalize(), nil
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return sel, &UsageError{Usage: usage, Reason: fmt.Sprintf("cannot mix %q with key=value selectors", arg)}
		}
		switch strings.ToLower(key) {
		case "level":
			sel.Level = value
		case "type":
			sel.Type = value
		case "skill":
			sel.Skill = value
		default:
			return sel, &UsageError{Usage: usage, Reason: fmt.Sprintf("unknown selector %q", key)}
		}
	}
	return sel.Normalize(), nil
}

// Execute runs one command line. Errors other than ErrQuit are reported to
// the user before being returned.
func (c *Controller) Execute(ctx context.Context, line string) error {
	args, err := utils.SplitArgs(line)
	if err != nil {
		err = &UsageError{Usage: "help", Reason: err.Error()}
		c.Report(err)
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	cmd, ok := commands[name]
	if !ok {
		err := &UsageError{Usage: "help", Reason: fmt.Sprintf("unknown command %q", args[0])}
		c.Report(err)
		return err
	}

	c.logger.Trace("Executing command", c.logger.Args("command", name, "args", args[1:]))
	err = cmd.run(c, ctx, args[1:])
	if err != nil && !errors.Is(err, ErrQuit) {
		c.Report(err)
	}
	return err
}

// Run reads commands from in, one per line, until quit, end of input or
// cancellation. When prompt is non-nil a prompt is written before each line.
func (c *Controller) Run(ctx context.Context, in io.Reader, prompt io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt != nil {
			fmt.Fprint(prompt, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := c.Execute(ctx, scanner.Text()); errors.Is(err, ErrQuit) {
			return nil
		}
	}
}
