package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateImages(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateImages() error {
	name := c.Images.ManifestName
	if name == "" {
		return errors.New("images.manifest_name must be set")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("images.manifest_name %q must be a plain file name", name)
	}
	if len(c.Images.Extensions) == 0 {
		return errors.New("images.extensions must include at least one extension")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if len(c.Audio.Extensions) == 0 {
		return errors.New("audio.extensions must include at least one extension")
	}
	seen := make(map[string]struct{}, len(c.Audio.Sections))
	for i, section := range c.Audio.Sections {
		if section.Key == "" {
			return fmt.Errorf("audio.sections[%d].key must be set", i)
		}
		if section.Dir == "" {
			return fmt.Errorf("audio.sections[%d].dir must be set", i)
		}
		if strings.HasPrefix(section.Dir, "..") {
			return fmt.Errorf("audio.sections[%d].dir %q must stay inside paths.audio_dir", i, section.Dir)
		}
		if _, exists := seen[section.Key]; exists {
			return fmt.Errorf("audio.sections key %q is duplicated", section.Key)
		}
		seen[section.Key] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color %q must be one of auto, always, never", c.Logging.Color)
	}
	return nil
}
