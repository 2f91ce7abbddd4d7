package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		so  screenOptions
		dir string
	)

	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Download every record matching the filters as a spreadsheet",
		Args:  cobra.ExactArgs(1),
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

			if dir == "" {
				dir = sess.cfg.DownloadDir
			}
			res := s.Export(context.Background(), dir)
			sess.notifier.Notify(res)
			return res.Err
		},
	}

	addScreenFlags(cmd, &so)
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default AERO_DOWNLOAD_DIR or the XDG download dir)")
	return cmd
}
