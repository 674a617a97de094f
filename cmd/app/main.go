package main

import (
	"log"

	"flightdesk/config"
	"flightdesk/internal/bootstrap"

	"github.com/spf13/cobra"
)

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "flightdesk",
		Short:         "Interactive in-memory flight booking simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			return bootstrap.Run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("flightdesk: %v", err)
	}
}
