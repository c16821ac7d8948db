package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func likeCmd(opts *rootOptions) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "like",
		Short: "Like the profile and print likes and popularity after each like",
		Example: `  profilectl like
  profilectl like --times 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("--times must be at least 1, got %d", times)
			}

			s := newSession(opts, cmd.OutOrStdout())
			for i := 0; i < times; i++ {
				<-s.state.OnLike().Done()
				fmt.Fprintf(s.out, "likes=%d popularity=%s\n",
					s.state.Likes().Get(), popularityString(s.state.Popularity().Get()))
			}
			return s.close()
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of likes")
	return cmd
}
