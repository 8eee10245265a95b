package datanav

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dasdy/datanav/logging"
	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/navigator"
	"github.com/dasdy/datanav/selection"
	"github.com/dasdy/datanav/tui"
	"github.com/spf13/cobra"
)

var logFile string

// navigateCmd represents the navigate command.
var navigateCmd = &cobra.Command{
	Use:   "navigate",
	Short: "Navigate a dataset in the terminal",
	Long: `Draws the data points as a grid and moves the cursor with the arrow keys
(or hjkl), the diagonals with y u b n. r reloads the dataset, q quits.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Log lines would tear the terminal UI apart.
		var logOutput io.Writer = io.Discard

		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("could not open log file %s: %w", logFile, err)
			}
			defer f.Close()

			logOutput = f
		}

		slog.SetDefault(slog.New(logging.NewHandler(logOutput, verbose)))

		storage, err := openStorage(false)
		if err != nil {
			return err
		}
		defer storage.Close()

		name, err := resolveDataset(storage, datasetName)
		if err != nil {
			return err
		}

		reload := func() (model.ViewModel, error) {
			return buildViewModel(storage, name)
		}

		vm, err := reload()
		if err != nil {
			return err
		}

		nav := navigator.New(selection.NewManager(name, storage))
		nav.Update(vm)

		return tui.Run(tui.New(name, nav, reload))
	},
}

func init() {
	rootCmd.AddCommand(navigateCmd)
	addStorageFlag(navigateCmd)
	addDatasetFlag(navigateCmd)

	navigateCmd.Flags().StringVar(&logFile,
		"log-file",
		"",
		"Write logs to this file while the terminal interface runs")
}
