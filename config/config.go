// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DatasetConfig struct {
	// Seed pins the random source for reproducible demo data. Zero or
	// absent means seed from entropy (fresh values every process run).
	Seed uint64 `yaml:"seed"`
}

type DashboardConfig struct {
	DefaultMinCoverage float64 `yaml:"default_min_coverage"` // initial slider position
	AllowOrigin        string  `yaml:"allow_origin"`         // CORS origin of the UI collaborator
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

var AppConfig Config

// LoadConfig reads configuration from a yaml file, then overlays any
// NIGCOMSAT_* environment variables (a local .env file is honored if
// present). An empty configPath probes the usual locations.
func LoadConfig(configPath string) error {
	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
			"../config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return fmt.Errorf("config.yaml not found in standard locations")
		}
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	AppConfig = Config{}
	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// .env is optional; missing file is not an error.
	_ = godotenv.Load()
	applyEnvOverrides()

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}

	// The default slider position must itself be a valid threshold.
	if AppConfig.Dashboard.DefaultMinCoverage < 0 {
		AppConfig.Dashboard.DefaultMinCoverage = 0
	}
	if AppConfig.Dashboard.DefaultMinCoverage > 100 {
		AppConfig.Dashboard.DefaultMinCoverage = 100
	}

	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("NIGCOMSAT_HOST"); v != "" {
		AppConfig.Server.Host = v
	}
	if v := os.Getenv("NIGCOMSAT_PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("NIGCOMSAT_ALLOW_ORIGIN"); v != "" {
		AppConfig.Dashboard.AllowOrigin = v
	}
	if v := os.Getenv("NIGCOMSAT_DATASET_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			AppConfig.Dataset.Seed = seed
		}
	}
}
