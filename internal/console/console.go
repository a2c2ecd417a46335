package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"tako/colors"
	"tako/internal/config"
	"tako/internal/diagnostics"
	"tako/internal/externs"
	"tako/internal/frontend/ast"
)

const (
	prompt      = "tako> "
	historyFile = ".tako_history"
)

// Console evaluates builtins interactively, the same natives the
// generated programs call into.
type Console struct {
	opts *config.Options
}

func New(opts *config.Options) *Console {
	if opts == nil {
		opts = config.Default()
	}
	return &Console{opts: opts}
}

// Options lets natives reach stdout and the interpreter arguments.
func (c *Console) Options() *config.Options { return c.opts }

// Eval parses and runs a single builtin call.
func (c *Console) Eval(line string) (*ast.Prim, error) {
	cmd, err := Parse(line)
	if err != nil {
		return nil, err
	}
	return c.run(cmd)
}

func (c *Console) run(cmd *Command) (*ast.Prim, error) {
	native, ok := externs.Lookup(cmd.Name)
	if !ok {
		return nil, diagnostics.UndefinedSymbol(cmd.Loc, cmd.Name)
	}
	args := make([]*externs.Thunk, len(cmd.Args))
	for i, arg := range cmd.Args {
		args[i] = externs.Value(arg)
	}
	return native(c, args, cmd.Loc)
}

// Handle processes one line and reports whether the session should go on.
func (c *Console) Handle(line string) bool {
	out := c.opts.Out()
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":q", ":quit":
			return false
		case ":help":
			c.help(out)
		default:
			fmt.Fprintln(out, "unknown command. Type :help for builtins or :quit to exit.")
		}
		return true
	}

	cmd, err := Parse(line)
	var val *ast.Prim
	if err == nil {
		val, err = c.run(cmd)
	}
	if err != nil {
		var diag *diagnostics.Diagnostic
		if errors.As(err, &diag) {
			emitter := diagnostics.NewEmitter(out)
			emitter.AddSource(consoleFile, line)
			emitter.Emit(diag)
		} else {
			colors.RED.Fprintln(out, err.Error())
		}
		return true
	}
	// print leaves no trailing newline
	if cmd.Name == "print" {
		fmt.Fprintln(out)
	}
	colors.GREY.Fprintf(out, "= %s\n", val)
	return true
}

func (c *Console) help(w io.Writer) {
	colors.CYAN.Fprintln(w, "builtins:")
	for _, name := range externs.Names() {
		ext, _ := externs.Get(name)
		kind := "function"
		if ext.Operator != nil {
			kind = fmt.Sprintf("operator, power %d", ext.Operator.BindingPower)
		}
		fmt.Fprintf(w, "  %-6s %-28s (%s)\n", name, ext.Type, kind)
	}
	fmt.Fprintln(w, "write `name arg...`, e.g. `^ 2 10`; :quit exits")
}

// Run reads lines until EOF or :quit, keeping history in the home directory.
func (c *Console) Run() int {
	colors.BOLD_CYAN.Fprintln(c.opts.Out(), "tako console. Type :help for builtins.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var matches []string
		for _, name := range externs.Names() {
			if strings.HasPrefix(name, line) {
				matches = append(matches, name+" ")
			}
		}
		return matches
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(c.opts.Out())
				return 0
			}
			colors.RED.Fprintln(os.Stderr, err.Error())
			return 1
		}
		if !c.Handle(line) {
			return 0
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
