package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atinyakov/passgen/internal/config"
	"github.com/atinyakov/passgen/internal/session"
	"github.com/atinyakov/passgen/internal/strength"
)

// runGenerate prints one password with its strength and performs the
// copy/save actions requested on the command line.
func runGenerate(ctx context.Context, out io.Writer, sess *session.Session, options *config.Options) error {
	pw, err := sess.Generate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, pw)
	printStrength(out, sess.Strength(), strength.EstimateOf(pw))

	if options.Copy {
		if err := sess.Copy(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Password copied to clipboard!")
	}
	if options.Save {
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Password saved to %s\n", options.SaveFile)
	}
	return nil
}

func printStrength(out io.Writer, res strength.Result, est strength.Estimate) {
	fmt.Fprintf(out, "Strength: %s (%d/%d, ~%.0f bits, cracked in %s)\n",
		res.Label, res.Score, strength.MaxScore, est.Entropy, est.CrackTime)
}
