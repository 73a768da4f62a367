package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeImages()
	c.normalizeAudio()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("ASSETMANIFEST_IMAGES_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ImagesDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		c.Paths.ImagesDir = defaultImagesDir
	}
	if strings.TrimSpace(c.Paths.AudioDir) == "" {
		c.Paths.AudioDir = defaultAudioDir
	}
	if strings.TrimSpace(c.Paths.AudioManifest) == "" {
		c.Paths.AudioManifest = defaultAudioManifest
	}

	var err error
	if c.Paths.ImagesDir, err = expandPath(strings.TrimSpace(c.Paths.ImagesDir)); err != nil {
		return fmt.Errorf("paths.images_dir: %w", err)
	}
	if c.Paths.AudioDir, err = expandPath(strings.TrimSpace(c.Paths.AudioDir)); err != nil {
		return fmt.Errorf("paths.audio_dir: %w", err)
	}
	if c.Paths.AudioManifest, err = expandPath(strings.TrimSpace(c.Paths.AudioManifest)); err != nil {
		return fmt.Errorf("paths.audio_manifest: %w", err)
	}
	return nil
}

func (c *Config) normalizeImages() {
	c.Images.ManifestName = strings.TrimSpace(c.Images.ManifestName)
	if c.Images.ManifestName == "" {
		c.Images.ManifestName = defaultManifestName
	}
	c.Images.Extensions = normalizeExtensions(c.Images.Extensions, true)
	if len(c.Images.Extensions) == 0 {
		c.Images.Extensions = append([]string(nil), defaultImageExtensions...)
	}
}

func (c *Config) normalizeAudio() {
	// Audio extensions match case-sensitively, so their case is kept.
	c.Audio.Extensions = normalizeExtensions(c.Audio.Extensions, false)
	if len(c.Audio.Extensions) == 0 {
		c.Audio.Extensions = append([]string(nil), defaultAudioExtensions...)
	}
	c.Audio.URLPrefix = "/" + strings.Trim(strings.TrimSpace(c.Audio.URLPrefix), "/")
	if c.Audio.URLPrefix == "/" {
		c.Audio.URLPrefix = defaultAudioURL
	}
	sections := make([]AudioSection, 0, len(c.Audio.Sections))
	for _, section := range c.Audio.Sections {
		section.Key = strings.TrimSpace(section.Key)
		section.Dir = strings.Trim(strings.TrimSpace(section.Dir), "/")
		if section.Key == "" && section.Dir == "" {
			continue
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		sections = defaultAudioSections()
	}
	c.Audio.Sections = sections
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultLogColor
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}
	if value, ok := os.LookupEnv("ASSETMANIFEST_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// normalizeExtensions trims entries, adds the leading dot, and drops
// duplicates while keeping the configured order.
func normalizeExtensions(values []string, lower bool) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		ext := strings.TrimSpace(value)
		if ext == "" || ext == "." {
			continue
		}
		if lower {
			ext = strings.ToLower(ext)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, exists := seen[ext]; exists {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
