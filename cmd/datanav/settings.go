package datanav

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dasdy/datanav/settings"
	"github.com/spf13/cobra"
)

var settingValues map[string]string

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the navigation settings of a dataset",
	Long: `Prints the resolved navigation properties as JSON. With --set the given
properties are validated and stored first, e.g. --set diagonal=true,incremental=2.`,
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := openStorage(false)
		if err != nil {
			return err
		}
		defer storage.Close()

		name, err := resolveDataset(storage, datasetName)
		if err != nil {
			return err
		}

		if len(settingValues) > 0 {
			objects, err := storage.LoadObjects(name)
			if err != nil {
				return fmt.Errorf("could not load objects of %s: %w", name, err)
			}

			objects, err = settings.Apply(objects, settingValues)
			if err != nil {
				return err
			}

			if err := storage.StoreObjects(name, objects); err != nil {
				return fmt.Errorf("could not store objects of %s: %w", name, err)
			}

			slog.Info("Settings stored", "dataset", name, "values", settingValues)
		}

		vm, err := buildViewModel(storage, name)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(settings.Enumerate(vm.Settings)); err != nil {
			return fmt.Errorf("could not print settings: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	addStorageFlag(settingsCmd)
	addDatasetFlag(settingsCmd)

	settingsCmd.Flags().StringToStringVar(&settingValues,
		"set",
		nil,
		"Properties to change, as name=value pairs")
}
