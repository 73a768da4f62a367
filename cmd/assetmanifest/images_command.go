package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"assetmanifest/internal/config"
	"assetmanifest/internal/fileutil"
	"assetmanifest/internal/manifest"
)

func newImagesCommand(ctx *commandContext) *cobra.Command {
	var copyTo string

	cmd := &cobra.Command{
		Use:   "images [base-dir]",
		Short: "Write the image manifest for numbered asset folders",
		Long: "Scan the digit-prefixed folders of base-dir (default paths.images_dir) and write\n" +
			"their sorted image file names to <base-dir>/manifest.json.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			baseDir, err := resolveDir(args, cfg.Paths.ImagesDir)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd, "images")
			if err != nil {
				return err
			}

			fsys := osfs.New("")
			builder := manifest.NewBuilder(fsys, cfg.Images.ManifestName,
				manifest.WithExtensions(cfg.Images.Extensions...),
				manifest.WithLogger(logger),
			)
			res, err := builder.Build(baseDir)
			if err != nil {
				return fmt.Errorf("build image manifest: %w", err)
			}

			if target := strings.TrimSpace(copyTo); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve copy target: %w", err)
				}
				if err := fileutil.CopyFile(fsys, res.Path, expanded); err != nil {
					return fmt.Errorf("copy manifest to %s: %w", expanded, err)
				}
				logger.Info("image manifest copied", slog.String("path", expanded))
			}

			return manifest.Report(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&copyTo, "copy-to", "", "Also copy the manifest to this path (e.g. src/data/raven-manifest.json)")
	return cmd
}
