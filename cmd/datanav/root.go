package datanav

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/datanav/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	storagePath string
	datasetName string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "datanav",
	Short: "Step through categorical data with a keyboard-style cursor",
	Long: `Datanav imports categorical datasets into a sqlite file and lets you move a
cursor over their horizontal and vertical categories, either in the browser or
in the terminal. Every move selects a data point and is kept in the history.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.datanav.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "If provided, debug output will be shown")
}

func initLogging() {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, verbose)))
}

func initConfig() {
	slog.Debug("initConfig start")

	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".datanav" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".datanav")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("datanav")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}

	slog.Debug("initConfig done", "config", viper.ConfigFileUsed())
}

func createExampleConfig() {
	exampleConfig := `
storage = "./datanav.sqlite"
port = 9000
`
	configPath := "./.datanav.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares case-insensitively, so only the hyphens need removing.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}

func addStorageFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./datanav.sqlite",
		"Path to the sqlite file holding datasets and selection history")
}

func addDatasetFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&datasetName,
		"dataset",
		"d",
		"",
		"Dataset to open (may be omitted when the storage holds exactly one)")
}
