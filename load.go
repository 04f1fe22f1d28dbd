package bendbox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

// see Format
const (
	TOML Format = iota
	YAML
)

// FormatOf returns the configuration format belonging to the file extension.
func FormatOf(filename string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("unknown configuration file extension: %v", ext)
	}
}

// LoadConfig reads a configuration file. Keys that are absent keep their value from DefaultConfig, unknown keys are an error. The configuration is not validated.
func LoadConfig(filename string) (Config, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return Config{}, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := ReadConfig(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load configuration file '%s': %w", filename, err)
	}
	return cfg, nil
}

// ReadConfig reads a configuration in the given format on top of DefaultConfig.
func ReadConfig(r io.Reader, format Format) (Config, error) {
	cfg := DefaultConfig()
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return Config{}, err
		}
		if undecoded := md.Undecoded(); 0 < len(undecoded) {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unknown configuration format: %d", format)
	}

	if cfg.Joint != nil {
		def := DefaultJoint()
		if cfg.Joint.TailLength == 0.0 {
			cfg.Joint.TailLength = def.TailLength
		}
		if cfg.Joint.TailWidth == 0.0 {
			cfg.Joint.TailWidth = def.TailWidth
		}
		if cfg.Joint.TaperRatio == 0.0 {
			cfg.Joint.TaperRatio = def.TaperRatio
		}
	}
	return cfg, nil
}

// WriteConfig writes the configuration in the given format.
func WriteConfig(w io.Writer, cfg Config, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(cfg)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown configuration format: %d", format)
}
