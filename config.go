// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".bagtree.yaml"

type DisplayConfig struct {
	TopK              int   `yaml:"top_k"`
	ShowProgress      bool  `yaml:"show_progress"`
	ProgressThreshold int64 `yaml:"progress_threshold"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		TopK:              10,
		ShowProgress:      true,
		ProgressThreshold: 1 << 20,
	},
	Cache: CacheConfig{
		Expiration: setCacheExpiration,
		Cleanup:    setCacheCleanup,
	},
	Log: LogConfig{
		Level:  "warn",
		Format: "text",
	},
}

// LoadConfig reads ~/.bagtree.yaml. Missing or unreadable files fall back to
// the defaults; keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if config.Display.TopK <= 0 {
		config.Display.TopK = defaultConfig.Display.TopK
	}

	return &config, nil
}

func (c *Config) LoadOptions() LoadOptions {
	return LoadOptions{
		ShowProgress:      c.Display.ShowProgress,
		ProgressThreshold: c.Display.ProgressThreshold,
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the default
// config file first if there is none.
func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 bagtree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "📊 %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • top_k: %d\n", config.Display.TopK)
	fmt.Fprintf(w, "  • show_progress: %t\n", config.Display.ShowProgress)
	fmt.Fprintf(w, "  • progress_threshold: %d bytes\n\n", config.Display.ProgressThreshold)

	fmt.Fprintf(w, "🗄  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • expiration: %s\n", config.Cache.Expiration)
	fmt.Fprintf(w, "  • cleanup: %s\n\n", config.Cache.Cleanup)

	fmt.Fprintf(w, "📝 %sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • level: %s\n", config.Log.Level)
	fmt.Fprintf(w, "  • format: %s\n", config.Log.Format)
	return nil
}
