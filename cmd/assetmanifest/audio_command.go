package main

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"assetmanifest/internal/audio"
	"assetmanifest/internal/config"
)

func newAudioCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "audio [audio-dir]",
		Short: "Write the audio manifest for the configured sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := resolveDir(args, cfg.Paths.AudioDir)
			if err != nil {
				return err
			}
			target := cfg.Paths.AudioManifest
			if output != "" {
				if target, err = config.ExpandPath(output); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}
			logger, err := ctx.logger(cmd, "audio")
			if err != nil {
				return err
			}

			builder := audio.NewBuilder(osfs.New(""),
				audio.WithExtensions(cfg.Audio.Extensions...),
				audio.WithURLPrefix(cfg.Audio.URLPrefix),
				audio.WithLogger(logger),
			)
			res, err := builder.Build(root, audioSections(cfg), target)
			if err != nil {
				return fmt.Errorf("build audio manifest: %w", err)
			}
			return audio.Report(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Manifest output path (default paths.audio_manifest)")
	return cmd
}

func audioSections(cfg *config.Config) []audio.Section {
	sections := make([]audio.Section, 0, len(cfg.Audio.Sections))
	for _, s := range cfg.Audio.Sections {
		sections = append(sections, audio.Section{Key: s.Key, Dir: s.Dir})
	}
	return sections
}
