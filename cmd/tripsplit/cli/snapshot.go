package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripsplit/internal/snapshot"
)

func newExportCommand(a *app) *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export <trip-id>",
		Short: "Write a trip with its participants and expenses as YAML or JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			doc, err := snapshot.Export(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return snapshot.Encode(cmd.OutOrStdout(), doc, pickFormat(format, ""))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := snapshot.Encode(f, doc, pickFormat(format, output)); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "yaml or json (default from the file extension, else yaml)")
	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create a new trip from an exported YAML or JSON document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := snapshot.Decode(f, pickFormat(format, args[0]))
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			trip, err := snapshot.Import(cmd.Context(), store, doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported trip %s (%s)\n", trip.ID, trip.Line())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "yaml or json (default from the file extension, else yaml)")
	return cmd
}

func pickFormat(flag, path string) snapshot.Format {
	if flag != "" {
		return snapshot.Format(flag)
	}
	return snapshot.FormatFromPath(path)
}
