// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Trainer TrainerConfig `toml:"trainer"`
	Keys    KeysConfig    `toml:"keys"`
}

// TrainerConfig maps session settings. Durations are in milliseconds.
type TrainerConfig struct {
	Lang           *string  `toml:"lang"`
	Words          *int     `toml:"words"`
	CorpusDir      *string  `toml:"corpus-dir"`
	Mode           *string  `toml:"mode"`
	Threshold      *int     `toml:"threshold"`
	Refresh        *int     `toml:"refresh"`
	Poll           *int     `toml:"poll"`
	Hint           *bool    `toml:"hint"`
	Sidetone       *bool    `toml:"sidetone"`
	Tone           *float64 `toml:"tone"`
	ToneDit        *int     `toml:"tone-dit"`
	ToneVolume     *float64 `toml:"tone-volume"`
	RepeatDelay    *int     `toml:"repeat-delay"`
	RepeatInterval *int     `toml:"repeat-interval"`
}

// KeysConfig maps trainer keys to terminal key names. A nil list keeps the
// default binding.
type KeysConfig struct {
	Straight  []string `toml:"straight"`
	Dot       []string `toml:"dot"`
	Dash      []string `toml:"dash"`
	LetterSep []string `toml:"letter-sep"`
	WordSep   []string `toml:"word-sep"`
	Backspace []string `toml:"backspace"`
	Quit      []string `toml:"quit"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template is written by the config command when no file exists yet.
const Template = `# tuimorse configuration
# Command line flags override these values.

[trainer]
# lang = "en"
# words = 10
# corpus-dir = "~/.config/tuimorse/words"
# mode = "duration"      # or "discrete"
# threshold = 150        # ms; presses up to this long are dots
# refresh = 100          # ms between stats updates
# poll = 5               # ms between key samples
# hint = false
# sidetone = false
# tone = 600.0           # Hz
# tone-dit = 60          # ms
# tone-volume = 0.5
# repeat-delay = 660     # ms; terminal auto-repeat delay
# repeat-interval = 100  # ms; terminal auto-repeat interval

[keys]
# straight = [" "]
# dot = [".", ",", "z"]
# dash = ["-", "/", "x"]
# letter-sep = ["f"]
# word-sep = ["j"]
# backspace = [";", "backspace"]
# quit = ["q", "esc", "ctrl+c"]
`

// WriteTemplate creates path with the commented template unless it exists.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
