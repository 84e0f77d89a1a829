package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"showscan/internal/catalog"
	"showscan/internal/logging"
	"showscan/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		headerOnly bool
		skipMedia  bool
		checksums  bool
		driveID    bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "scan <root>...",
		Short: "Scan storage roots and catalog every show folder found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}

			// One scan at a time per catalog database.
			lock := flock.New(filepath.Join(cfg.Paths.CatalogDir, "scan.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock: %w", err)
			}
			if !locked {
				return errors.New("another showscan scan is already running against this catalog")
			}
			defer func() { _ = lock.Unlock() }()

			opts := scanner.Options{
				Roots:      args,
				HeaderOnly: headerOnly || cfg.Probe.HeaderOnly,
				SkipMedia:  skipMedia || cfg.Probe.SkipMedia,
				Checksums:  checksums || cfg.Scan.Checksums,
				DriveID:    driveID || cfg.Scan.DriveID,
			}

			res, err := scanner.New(cfg, logger).Run(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			store, err := catalog.Open(cfg.CatalogDatabasePath())
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			runDBID, err := store.BeginRun(cmd.Context(), res.RunID, args)
			if err != nil {
				return fmt.Errorf("record run: %w", err)
			}
			if err := store.SaveRows(cmd.Context(), runDBID, res.Rows); err != nil {
				return fmt.Errorf("save rows: %w", err)
			}
			if err := store.FinishRun(cmd.Context(), runDBID, len(res.Rows)); err != nil {
				return fmt.Errorf("finish run: %w", err)
			}

			if output != "" {
				if err := catalog.ExportCSV(output, res.Rows); err != nil {
					return fmt.Errorf("export csv: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cataloged %s shows across %s folders.\n",
				humanize.Comma(int64(len(res.Rows))), humanize.Comma(int64(res.FoldersScanned)))
			for _, skipped := range res.SkippedRoots {
				fmt.Fprintf(out, "Skipped unusable root: %s\n", skipped)
			}
			if output != "" {
				fmt.Fprintf(out, "Wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&headerOnly, "header-only", false, "Probe only media headers for speed")
	cmd.Flags().BoolVar(&skipMedia, "no-media", false, "Skip media probing entirely")
	cmd.Flags().BoolVar(&checksums, "checksums", false, "Checksum representative media and link duplicates")
	cmd.Flags().BoolVar(&driveID, "drive-id", false, "Capture a stable volume identifier per root")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the rows to a CSV file")
	return cmd
}
