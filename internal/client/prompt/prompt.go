// Package prompt asks the user for generation settings on a line-oriented terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atinyakov/passgen/internal/password"
)

// PromptForOptions walks through length and every character class,
// keeping the current value when the answer is empty or not understood.
func PromptForOptions(scanner *bufio.Scanner, out io.Writer, cur password.Options) password.Options {
	fmt.Fprintf(out, "Password length [%d]: ", cur.Length)
	if answer, ok := readLine(scanner); ok && answer != "" {
		if n, err := strconv.Atoi(answer); err == nil {
			cur.Length = n
		} else {
			fmt.Fprintf(out, "Not a number: %q, keeping %d\n", answer, cur.Length)
		}
	}

	for _, c := range []password.Class{password.Upper, password.Lower, password.Digits, password.Symbols} {
		fmt.Fprintf(out, "Include %s? [%s]: ", c, yesNo(cur.Enabled(c)))
		answer, ok := readLine(scanner)
		if !ok {
			break
		}
		if want, known := parseYesNo(answer); known && want != cur.Enabled(c) {
			cur = cur.Toggle(c)
		}
	}
	return cur
}

// PromptConfirm asks a yes/no question, defaulting to no.
func PromptConfirm(scanner *bufio.Scanner, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, _ := readLine(scanner)
	want, known := parseYesNo(answer)
	return known && want
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func yesNo(b bool) string {
	if b {
		return "Y/n"
	}
	return "y/N"
}

func parseYesNo(s string) (value, known bool) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
