package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/profile-sample/internal/model"
)

func emailCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email <value>...",
		Short: "Write one or more emails in quick succession and trace the email state",
		Long: `Writes every value to the profile email without waiting in between and
prints each email state transition until all checks have settled.

Checks are not cancelled by later writes, so the final state can belong to an
older value:

  profilectl email a@b ""`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(opts, cmd.OutOrStdout())
			if err := s.settle(); err != nil {
				return err
			}

			fmt.Fprintf(s.out, "check delay=%s\n", s.checker.Delay())

			var unsubscribe func()
			s.watch(func() {
				unsubscribe = s.state.EmailState().Subscribe(func(state model.EmailState) {
					fmt.Fprintf(s.out, "%s email=%q state=%s inflight=%d\n",
						s.elapsed(), s.state.Email().Get(), emailStateString(state), s.checker.InFlight())
				})
			})

			for _, email := range args {
				s.state.SetEmail(email)
			}
			if err := s.settle(); err != nil {
				return err
			}
			s.watch(unsubscribe)

			p := s.state.Snapshot()
			fmt.Fprintf(s.out, "final: email=%q state=%s inflight=%d\n",
				p.Email, emailStateString(p.EmailState), s.checker.InFlight())
			return s.close()
		},
	}
	return cmd
}
