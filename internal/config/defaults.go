package config

const (
	defaultImagesDir     = "public/raven-assets"
	defaultAudioDir      = "public/audio"
	defaultAudioManifest = "src/data/audio-manifest.json"
	defaultManifestName  = "manifest.json"
	defaultAudioURL      = "/audio"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogColor      = "auto"
)

var (
	defaultImageExtensions = []string{".png", ".jpg", ".jpeg"}
	defaultAudioExtensions = []string{".mp3", ".m4a", ".wav"}
)

func defaultAudioSections() []AudioSection {
	return []AudioSection{
		{Key: "genesis", Dir: "genesis"},
		{Key: "broll", Dir: "b-roll"},
		{Key: "sideA", Dir: "final/side-a"},
		{Key: "sideB", Dir: "final/side-b"},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ImagesDir:     defaultImagesDir,
			AudioDir:      defaultAudioDir,
			AudioManifest: defaultAudioManifest,
		},
		Images: Images{
			ManifestName: defaultManifestName,
			Extensions:   append([]string(nil), defaultImageExtensions...),
		},
		Audio: Audio{
			Extensions: append([]string(nil), defaultAudioExtensions...),
			URLPrefix:  defaultAudioURL,
			Sections:   defaultAudioSections(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Color:  defaultLogColor,
		},
	}
}
