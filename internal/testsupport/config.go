package testsupport

import (
	"path/filepath"
	"testing"

	"assetmanifest/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ImagesDir = filepath.Join(base, "raven-assets")
	cfgVal.Paths.AudioDir = filepath.Join(base, "audio")
	cfgVal.Paths.AudioManifest = filepath.Join(base, "data", "audio-manifest.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithImageTree populates the images directory with the given paths (see MakeTree).
func WithImageTree(paths ...string) ConfigOption {
	return func(b *configBuilder) {
		MakeTree(b.t, b.cfg.Paths.ImagesDir, append([]string{"./"}, paths...)...)
	}
}

// WithAudioTree populates the audio directory with the given paths (see MakeTree).
func WithAudioTree(paths ...string) ConfigOption {
	return func(b *configBuilder) {
		MakeTree(b.t, b.cfg.Paths.AudioDir, append([]string{"./"}, paths...)...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ImagesDir)
}
