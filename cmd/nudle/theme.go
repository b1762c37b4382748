package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintln(cmd.OutOrStdout(), s.Theme.Current())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Long: `Switch between the light and dark theme and store the choice. Running
nudle sessions that watch the theme file pick the change up immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			s.Theme.Toggle()
			if err := s.Theme.Persist(); err != nil {
				return fmt.Errorf("failed to store theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Theme.Current())
			return nil
		},
	})

	return cmd
}
