package main

import (
	"fmt"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"assetmanifest/internal/manifest"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect [base-dir]",
		Short: "Preview the image manifest without writing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			baseDir, err := resolveDir(args, cfg.Paths.ImagesDir)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd, "inspect")
			if err != nil {
				return err
			}

			scanner := manifest.NewScanner(osfs.New(""),
				manifest.WithExtensions(cfg.Images.Extensions...),
				manifest.WithLogger(logger),
			)
			m, err := scanner.Scan(baseDir)
			if err != nil {
				return fmt.Errorf("scan %s: %w", baseDir, err)
			}

			rows := manifest.Summarize(m)
			if jsonOutput {
				return writeJSON(cmd, rows)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No asset folders found in %s\n", baseDir)
				return nil
			}
			tableRows := make([][]string, 0, len(rows))
			for _, row := range rows {
				tableRows = append(tableRows, []string{row.Folder, strconv.Itoa(row.Count), row.First, row.Last})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Folder", "Images", "First", "Last"},
				tableRows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				shouldColorize(out),
			))
			fmt.Fprintf(out, "%d folders, %d images\n", m.Len(), m.FileCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output folder summaries as JSON")
	return cmd
}
