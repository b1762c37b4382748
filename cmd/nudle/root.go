package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	url        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "nudle [query...]",
		Short: "nudle is a terminal search front end",
		Long: `Launch the nudle search screen. With a query, nudle opens straight on the
results page for it; --url opens any in-app location such as '/search?q=cats'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVar(&flags.url, "url", "", "In-app location to open, e.g. '/search?q=cats'")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
