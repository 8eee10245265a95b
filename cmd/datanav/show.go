package datanav

import (
	"log/slog"

	"github.com/dasdy/datanav/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	port      int
	dev       bool
	assetsDir string
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:              "show",
	Short:            "Navigate a dataset in the browser",
	Long:             `Serves the chart with navigation arrows and a settings pane for one stored dataset.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		slog.Debug("Config", "file", viper.ConfigFileUsed(), "parameters", viper.AllSettings())

		storage, err := openStorage(false)
		if err != nil {
			return err
		}
		defer storage.Close()

		name, err := resolveDataset(storage, datasetName)
		if err != nil {
			return err
		}

		return web.StartServer(port, storage, name, assetsDir, dev)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	addStorageFlag(showCmd)
	addDatasetFlag(showCmd)

	showCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	showCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	showCmd.Flags().StringVar(&assetsDir,
		"assets",
		"assets",
		"Directory served under /assets/")
}
