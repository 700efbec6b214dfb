package main

import (
	"os"

	"github.com/spf13/cobra"

	"paybridge/internal/interfaces/cli/migrate"
	"paybridge/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paybridge",
		Short: "PayBridge - payment gateway integration service",
		Long:  `PayBridge reconciles FreePay gateway callbacks with order state and exposes capture, cancel and refund operations.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
