package recommendation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads engine tuning from a YAML file. Fields missing from
// the file keep their defaults; an empty path returns DefaultConfig.
//
//	weights:
//	  collaborative: 0.4
//	  content: 0.3
//	  trending: 0.3
//	similarity_threshold: 0.1
//	trending_window_days: 30
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read recommendation config: %w", err)
	}

	return parseConfig(raw, cfg)
}

func parseConfig(raw []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
