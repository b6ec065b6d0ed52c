package config

import "time"

// Config is the playground configuration document.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Hero    HeroConfig    `yaml:"hero"`
	Logging LoggingConfig `yaml:"logging"`
}

// ThemeConfig selects where the theme preference lives and which OS signal
// the engine follows.
type ThemeConfig struct {
	// StorePath is the preference file. Empty keeps the preference in memory.
	StorePath    string        `yaml:"store_path"`
	Source       string        `yaml:"source" validate:"required,oneof=auto desktop env terminal manual none"`
	PollInterval time.Duration `yaml:"poll_interval" validate:"min=100ms,max=1h"`
}

// HeroConfig is the content of the showcase hero.
type HeroConfig struct {
	Subtitle string   `yaml:"subtitle" validate:"max=80"`
	Bold     string   `yaml:"bold" validate:"required_without=Regular,max=64"`
	Regular  string   `yaml:"regular" validate:"max=64"`
	Features []string `yaml:"features" validate:"max=6,dive,required,max=200"`
}

// LoggingConfig mirrors logger.Options.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file"`
}

// Default returns the built-in configuration with unexpanded paths.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			StorePath:    "~/" + appDir + "/preferences.json",
			Source:       "auto",
			PollInterval: 2 * time.Second,
		},
		Hero: HeroConfig{
			Subtitle: "Welcome to the",
			Bold:     "Machine Learning",
			Regular:  "Playground",
			Features: []string{
				"Heard about Machine Learning, but still not quite sure what it's all about?",
				"Want a quick and easy way of understanding key concepts?",
				"Curious to try ML without needing any math or coding background?",
			},
		},
		Logging: LoggingConfig{
			Level:         "info",
			HumanReadable: true,
		},
	}
}
