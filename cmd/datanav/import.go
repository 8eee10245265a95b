package datanav

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/datanav/dataset"
	"github.com/spf13/cobra"
)

var (
	importFile       string
	importName       string
	importHorizontal string
	importVertical   string
	importSortedBy   string
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a YAML or CSV dataset into the storage",
	Long: `Reads a .yaml/.yml or .csv file and stores it under its name, replacing any
dataset with the same name. For CSV files, name the columns that feed the
horizontal and vertical axes and which of them the rows are sorted by.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		sortedBy, err := parseSortedBy(importSortedBy)
		if err != nil {
			return err
		}

		loaded, err := dataset.Load(importFile, dataset.CSVOptions{
			Horizontal: importHorizontal,
			Vertical:   importVertical,
			SortedBy:   sortedBy,
		})
		if err != nil {
			return err
		}

		if importName != "" {
			loaded.Name = importName
		}

		storage, err := openStorage(true)
		if err != nil {
			return err
		}
		defer storage.Close()

		if err := storage.StoreDataset(loaded.Name, loaded.View); err != nil {
			return fmt.Errorf("could not store dataset %s: %w", loaded.Name, err)
		}

		if len(loaded.Objects) > 0 {
			if err := storage.StoreObjects(loaded.Name, loaded.Objects); err != nil {
				return fmt.Errorf("could not store objects of %s: %w", loaded.Name, err)
			}
		}

		slog.Info("Imported dataset",
			"dataset", loaded.Name,
			"columns", len(loaded.View.Metadata),
			"categories", len(loaded.View.Categories),
			"storage", storagePath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	addStorageFlag(importCmd)

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Dataset file (.yaml, .yml or .csv)")
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "Dataset name (defaults to the name in the file or the file name)")
	importCmd.Flags().StringVar(&importHorizontal, "horizontal", "", "CSV column used as the horizontal category")
	importCmd.Flags().StringVar(&importVertical, "vertical", "", "CSV column used as the vertical category")
	importCmd.Flags().StringVar(&importSortedBy, "sorted-by", "", "Outer CSV sort key: h (horizontal, the default) or v (vertical)")

	cobra.CheckErr(importCmd.MarkFlagRequired("file"))
}
