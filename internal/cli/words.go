package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWordsCommand(a *app) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the loaded word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.lists()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			answers, allowed := l.Stats()
			fmt.Fprintf(out, "length:  %d\nanswers: %d\nallowed: %d\n", l.Answers.Length(), answers, allowed)
			if list {
				for _, w := range l.Answers.Words() {
					fmt.Fprintln(out, w)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "also print every answer word")
	return cmd
}
