package winres

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/SethCurry/winres/pkg/resolution"
)

type Config struct {
	// The directory to write test cards to.  This can be an absolute or relative path,
	// but it will not expand tilde for home directories nor will it interpret environment
	// variables.
	//
	// Test cards will be saved by resolution and Unix timestamp with an appropriate file ending.
	OutputDirectory string `json:"output_directory"`

	// The command to run after rendering a test card.  This command will be invoked with
	// the path to the image as an argument.  E.g. putting "feh" in here will result
	// in "feh /path/to/image" being called after the card is written.
	PostRenderCommand string `json:"post_render_command"`

	// The resolution used when a command is not given one.  Anything resolution.Parse
	// accepts works here, e.g. "720p", "480p@4:3", "1280x720" or "16:9@480".
	DefaultResolution string `json:"default_resolution"`

	// The title of preview windows.
	WindowTitle string `json:"window_title"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		OutputDirectory:   ".",
		DefaultResolution: "720p",
		WindowTitle:       "winres",
	}
}

// Resolution parses DefaultResolution.
func (c Config) Resolution() (resolution.Resolution, error) {
	r, err := resolution.Parse(c.DefaultResolution)
	if err != nil {
		return resolution.Resolution{}, fmt.Errorf("invalid default_resolution: %w", err)
	}

	return r, nil
}

// DefaultConfigPath returns the default path to the config file for winres.
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".config", "winres", "config.json"), nil
}

// ParseConfigFile parses the given configuration file and returns a Config.
// Fields missing from the file keep their DefaultConfig values.
func ParseConfigFile(configPath string) (*Config, error) {
	fd, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file %q: %w", configPath, err)
	}

	defer fd.Close()

	config := DefaultConfig()

	err = json.NewDecoder(fd).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON in configuration file %q: %w", configPath, err)
	}

	if _, err := config.Resolution(); err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", configPath, err)
	}

	return &config, nil
}

// LoadConfig is like ParseConfigFile, but a missing file yields DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	config, err := ParseConfigFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultConfig()
		return &defaults, nil
	}

	return config, err
}
