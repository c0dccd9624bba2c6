package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match-engine/internal/config"
	"github.com/jonathan/resume-match-engine/internal/engine"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List the available industry keyword catalogues",
	RunE:  runIndustries,
}

var industriesConfig string

func init() {
	industriesCmd.Flags().StringVarP(&industriesConfig, "config", "c", "", "Path to engine config JSON")
	rootCmd.AddCommand(industriesCmd)
}

func runIndustries(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(industriesConfig)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	for _, tag := range eng.Industries() {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}
