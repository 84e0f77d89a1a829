package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"showscan/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and export the stored catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogExportCommand(ctx))

	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the rows from the most recent scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.LatestRun(cmd.Context())
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			out := cmd.OutOrStdout()
			if run == nil {
				fmt.Fprintln(out, "Catalog is empty; run a scan first.")
				return nil
			}

			rows, err := store.RowsForRun(cmd.Context(), run.ID)
			if err != nil {
				return fmt.Errorf("read rows: %w", err)
			}

			tableRows := make([][]string, 0, len(rows))
			for _, r := range rows {
				tableRows = append(tableRows, []string{
					r.ShowID, r.Artist, r.ShowDate, r.VenueName, r.City, r.Country,
					r.RecordingType, r.TotalSizeHuman, r.DuplicateOf,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Artist", "Date", "Venue", "City", "Country", "Type", "Size", "Dup Of"},
				tableRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d rows from run %s (started %s)\n",
				len(rows), run.RunID, run.StartedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newCatalogExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the most recent scan as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.LatestRows(cmd.Context())
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			if err := catalog.ExportCSV(output, rows); err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %s rows.\n", output, strconv.Itoa(len(rows)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "shows_catalog.csv", "Destination CSV path")
	return cmd
}

func openStore(ctx *commandContext) (*catalog.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := catalog.Open(cfg.CatalogDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}
