package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Policy   PolicyConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	APIPort string
	OpsPort string
	GinMode string
}

// DatabaseConfig holds the optional decision-log database settings. With an
// empty URL the engine uses the in-memory log.
type DatabaseConfig struct {
	URL string
}

// PolicyConfig holds the optional persona-table override source
type PolicyConfig struct {
	TableFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			APIPort: getEnvOrDefault("PORT", "8080"),
			OpsPort: getEnvOrDefault("OPS_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Policy: PolicyConfig{
			TableFile: getEnvOrDefault("POLICY_TABLE_FILE", ""),
		},
	}, nil
}

// profileRow is the on-disk shape of one persona profile
type profileRow struct {
	CitationsRequired   bool    `json:"citations_required"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	MinDistinctSources  int     `json:"min_distinct_sources"`
	PrimarySourcesOnly  bool    `json:"primary_sources_only"`
	StrictMode          bool    `json:"strict_mode"`
}

// LoadRegistry builds the policy registry: the built-in table, unless a
// POLICY_TABLE_FILE provides a replacement table at process start.
func LoadRegistry(cfg PolicyConfig) (*policy.Registry, error) {
	if cfg.TableFile == "" {
		return policy.NewDefaultRegistry(), nil
	}

	data, err := os.ReadFile(cfg.TableFile)
	if err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("cannot read policy table file %s: %v", cfg.TableFile, err))
	}

	var rows map[string]profileRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("cannot parse policy table file %s: %v", cfg.TableFile, err))
	}

	profiles := make([]policy.Profile, 0, len(rows))
	for persona, row := range rows {
		key, err := core.ParsePersonaKey(persona)
		if err != nil {
			return nil, errors.ConfigInvalid(fmt.Sprintf("policy table file %s: %v", cfg.TableFile, err))
		}
		profiles = append(profiles, policy.Profile{
			Name:                key,
			CitationsRequired:   row.CitationsRequired,
			SimilarityThreshold: row.SimilarityThreshold,
			MinDistinctSources:  row.MinDistinctSources,
			PrimarySourcesOnly:  row.PrimarySourcesOnly,
			StrictMode:          row.StrictMode,
		})
	}

	reg, err := policy.NewRegistry(profiles)
	if err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("invalid policy table in %s: %v", cfg.TableFile, err))
	}
	return reg, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
