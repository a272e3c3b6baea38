package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atinyakov/passgen/internal/client/prompt"
	"github.com/atinyakov/passgen/internal/config"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/service"
	"github.com/atinyakov/passgen/internal/session"
	"github.com/atinyakov/passgen/internal/strength"
)

const shellHelp = "Available commands: help, show, generate, length <n>, toggle <upper|lower|digits|symbols>, " +
	"configure, copy, save, strength <password>, history, exit"

// repl runs the interactive shell loop, accepting commands that drive the session.
func repl(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session, svc *service.GeneratorService, options *config.Options) {
	scanner := bufio.NewScanner(in)
	unsaved := false

	for {
		fmt.Fprint(out, "passgen> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Fprintln(out, shellHelp)
		case "show":
			printOptions(out, sess.Options)
		case "generate", "gen":
			pw, err := sess.Generate(ctx)
			if err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			unsaved = true
			fmt.Fprintln(out, pw)
			printStrength(out, sess.Strength(), strength.EstimateOf(pw))
		case "length":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: length <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(out, "Usage: length <n>")
				continue
			}
			sess.SetLength(n)
			fmt.Fprintf(out, "Length set to %d\n", sess.Options.Length)
		case "toggle":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: toggle <upper|lower|digits|symbols>")
				continue
			}
			c, ok := password.ParseClass(args[1])
			if !ok {
				fmt.Fprintf(out, "Unknown character set: %s\n", args[1])
				continue
			}
			sess.Toggle(c)
			printOptions(out, sess.Options)
		case "configure":
			opts := prompt.PromptForOptions(scanner, out, sess.Options)
			sess.Options = opts
			sess.SetLength(opts.Length)
			printOptions(out, sess.Options)
		case "copy":
			if err := sess.Copy(); err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			fmt.Fprintln(out, "Password copied to clipboard!")
		case "save":
			if err := sess.Save(); err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			unsaved = false
			fmt.Fprintf(out, "Password saved to %s\n", options.SaveFile)
		case "strength":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: strength <password>")
				continue
			}
			pw := strings.TrimSpace(strings.TrimPrefix(line, args[0]))
			printStrength(out, strength.Assess(pw), strength.EstimateOf(pw))
		case "history":
			if err := printHistory(ctx, out, svc, options.HistoryLimit); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}
		case "exit", "quit":
			if unsaved && prompt.PromptConfirm(scanner, out, "Save the last password before exiting?") {
				if err := sess.Save(); err != nil {
					fmt.Fprintln(out, "Error:", err)
				} else {
					fmt.Fprintf(out, "Password saved to %s\n", options.SaveFile)
				}
			}
			fmt.Fprintln(out, "Bye")
			return
		default:
			fmt.Fprintln(out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func printOptions(out io.Writer, o password.Options) {
	mark := func(b bool) string {
		if b {
			return "x"
		}
		return " "
	}
	fmt.Fprintf(out, "Length: %d  [%s] upper  [%s] lower  [%s] digits  [%s] symbols\n",
		o.Length, mark(o.Upper), mark(o.Lower), mark(o.Digits), mark(o.Symbols))
}
