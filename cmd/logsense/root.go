package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "logsense",
		Short:         "Classify and analyze logs or code from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newAnalyzeCommand(&configFile))

	return rootCmd
}
