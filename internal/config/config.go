// Package config layers a YAML file under the environment: file values
// fill the gaps, env vars win, and everything has a default so the
// service starts with no config at all (mock LLM, local workbook).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type DataSource struct {
	WorkbookPath  string        `yaml:"workbook_path"`
	SpreadsheetID string        `yaml:"spreadsheet_id"`
	Range         string        `yaml:"range"`
	APIKey        string        `yaml:"api_key"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

type LLM struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	Mock    bool   `yaml:"mock"`
}

type Config struct {
	Port string     `yaml:"port"`
	Data DataSource `yaml:"data_source"`
	LLM  LLM        `yaml:"llm"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Data: DataSource{
			WorkbookPath: "voc_interactions.xlsx",
			Range:        "sheet1!A:H",
			CacheTTL:     10 * time.Minute,
		},
		LLM: LLM{
			BaseURL: "https://integrate.api.nvidia.com/v1",
			Model:   "nvidia/llama-3.1-nemotron-nano-vl-8b-v1",
			Mock:    true,
		},
	}
}

// Load reads an optional YAML file then applies env overrides.
// A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Port, "PORT")
	setString(&c.Data.WorkbookPath, "DATASET_PATH")
	setString(&c.Data.SpreadsheetID, "SPREADSHEET_ID")
	setString(&c.Data.Range, "SHEETS_RANGE")
	setString(&c.Data.APIKey, "SHEETS_API_KEY")
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Data.CacheTTL = d
		}
	}
	setString(&c.LLM.BaseURL, "LLM_GATEWAY_URL")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	if v := os.Getenv("USE_MOCK_LLM"); v != "" {
		c.LLM.Mock = v == "true"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// UseSheets reports whether the remote spreadsheet source is configured;
// otherwise the local workbook is used.
func (c Config) UseSheets() bool {
	return c.Data.SpreadsheetID != ""
}
