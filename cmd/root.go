package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/wallet/cmd/transaction"
	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE once flags are parsed.
	application := &app.App{}

	rootCmd := &cobra.Command{
		Use:           "wallet",
		Short:         "wallet shows your card balance, daily points and transactions",
		Long:          `wallet renders a card-balance and rewards snapshot in the terminal or over HTTP.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			built, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			*application = *built
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().String("now", "", "reference time for labels and points (YYYY-MM-DD or RFC 3339)")
	rootCmd.PersistentFlags().StringP("source", "s", "", "snapshot file path or http(s) URL")
	_ = viper.BindPFlag("clock.now", rootCmd.PersistentFlags().Lookup("now"))
	_ = viper.BindPFlag("snapshot.source", rootCmd.PersistentFlags().Lookup("source"))

	rootCmd.AddCommand(NewSummaryCmd(application))
	rootCmd.AddCommand(NewPointsCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewServeCmd(application))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))
	rootCmd.AddCommand(NewTxListCmd(application))

	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func initConfig() error {
	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("WALLET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// A separate instance keeps flag and env values out of the file.
	defaults := viper.New()
	for key, value := range config.Defaults() {
		defaults.SetDefault(key, value)
	}

	if err := defaults.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
