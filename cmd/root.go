package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/booktime/storefront/internal/common"
	"github.com/booktime/storefront/internal/log"
	storefrontCmd "github.com/booktime/storefront/storefront/cmd"
)

func Start() {
	logger := log.Get("/var/log/storefront.log", os.Getenv("ENV")).
		With().
		Str(log.KeyAppName, common.AppStorefrontService).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "storefront"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the storefront service",
		Run: func(cmd *cobra.Command, args []string) {
			storefrontCmd.RunStorefrontService(cmd.Context())
		},
	})

	err := rootCmd.ExecuteContext(c)
	if err != nil {
		logger.Fatal().Err(err).Msg(err.Error())
	}
}
