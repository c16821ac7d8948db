// Package main provides profilectl, a headless driver for the profile
// view-model that prints every observable change.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/profile-sample/internal/emailcheck"
)

var version = "dev"

type rootOptions struct {
	delay   time.Duration
	noColor bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "profilectl",
		Short:         "Drive the profile view-model without a window",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().DurationVar(&opts.delay, "delay", emailcheck.DefaultDelay, "simulated email check duration")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		showCmd(opts),
		likeCmd(opts),
		emailCmd(opts),
	)
	return cmd
}
