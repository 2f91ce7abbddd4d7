package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/listview"
)

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) listview.Confirmer {
	reader := bufio.NewReader(in)
	return listview.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(out, "%s (y/N) ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		answer = strings.TrimSpace(strings.ToLower(answer))
		return answer == "y" || answer == "yes"
	})
}

func newDeleteCmd() *cobra.Command {
	var (
		so    screenOptions
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			s, err := newScreen(sess, args[0], so)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			// The prompt names the record when it is on the loaded page.
			sess.notifier.Notify(s.Load(ctx))

			confirm := promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			if force {
				confirm = listview.ConfirmFunc(func(context.Context, string) bool { return true })
			}
			res := s.Delete(ctx, args[1], confirm)
			sess.notifier.Notify(res)
			if res.Err != nil {
				return res.Err
			}
			if res.OK {
				s.Render(cmd.OutOrStdout())
			}
			return nil
		},
	}

	addScreenFlags(cmd, &so)
	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")
	return cmd
}
