package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd(opts *rootOptions) *cobra.Command {
	var name, lastName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the profile snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(opts, cmd.OutOrStdout())

			if cmd.Flags().Changed("name") {
				s.state.SetName(name)
			}
			if cmd.Flags().Changed("last-name") {
				s.state.SetLastName(lastName)
			}
			if err := s.settle(); err != nil {
				return err
			}

			p := s.state.Snapshot()
			fmt.Fprintf(s.out, "name:       %s\n", p.DisplayName())
			fmt.Fprintf(s.out, "likes:      %d\n", p.Likes)
			fmt.Fprintf(s.out, "popularity: %s\n", popularityString(p.Popularity))
			fmt.Fprintf(s.out, "email:      %q\n", p.Email)
			fmt.Fprintf(s.out, "emailState: %s\n", emailStateString(p.EmailState))

			return s.close()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "set the first name before printing")
	cmd.Flags().StringVar(&lastName, "last-name", "", "set the last name before printing")
	return cmd
}
