package main

import (
	"fmt"

	"spi-eshop-be/internal/config"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	noColor bool
	verbose bool
	cfg     *config.Config
)

var (
	okf   = color.New(color.FgGreen).PrintfFunc()
	warnf = color.New(color.FgYellow).PrintfFunc()
	label = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Operator tooling for the SPI department store backend",
	Long: `storectl runs migrations, seeds the demo catalog, asks the AI assistant
questions from the terminal and tails the store event stream.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		cfg = config.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout as well")
}

func openDB() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if verbose {
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	} else {
		db, err = database.NewQuietGormDB(cfg.Database.Connection)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return db, nil
}

func cliLogger() logger.ILogger {
	if verbose {
		return logger.NewZapLogger(cfg.App.LogFilePath, false)
	}
	return logger.NewNopLogger()
}
