package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// TestLoadRegistryDefault tests that no table file yields the built-ins
func TestLoadRegistryDefault(t *testing.T) {
	reg, err := LoadRegistry(PolicyConfig{})
	require.NoError(t, err)

	p, known := reg.Lookup(policy.PersonaEducator)
	assert.True(t, known)
	assert.Equal(t, 0.80, p.SimilarityThreshold)
}

// TestLoadRegistryFromFile tests the external table override
func TestLoadRegistryFromFile(t *testing.T) {
	table := `{
		"researcher": {"citations_required": true, "similarity_threshold": 0.9, "min_distinct_sources": 4, "primary_sources_only": true, "strict_mode": true},
		"Educator": {"citations_required": true, "similarity_threshold": 0.7, "min_distinct_sources": 1, "primary_sources_only": false, "strict_mode": false}
	}`
	path := filepath.Join(t.TempDir(), "personas.json")
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	reg, err := LoadRegistry(PolicyConfig{TableFile: path})
	require.NoError(t, err)

	p, known := reg.Lookup(policy.PersonaResearcher)
	assert.True(t, known)
	assert.Equal(t, 4, p.MinDistinctSources)

	// Persona keys are normalized on load
	p, known = reg.Lookup(policy.PersonaEducator)
	assert.True(t, known)
	assert.Equal(t, 0.7, p.SimilarityThreshold)

	// Personas absent from the file are gone, and fall back to researcher
	p, known = reg.Lookup(policy.PersonaCreator)
	assert.False(t, known)
	assert.Equal(t, policy.PersonaResearcher, p.Name)
}

// TestLoadRegistryRejectsBadTables tests the configuration error paths
func TestLoadRegistryRejectsBadTables(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "absent.json")
	_, err := LoadRegistry(PolicyConfig{TableFile: missing})
	assert.Error(t, err)

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0o644))
	_, err = LoadRegistry(PolicyConfig{TableFile: malformed})
	assert.Error(t, err)

	// A table without the fallback persona is unusable
	noFallback := filepath.Join(dir, "nofallback.json")
	require.NoError(t, os.WriteFile(noFallback, []byte(`{"creator": {"citations_required": false, "similarity_threshold": 0.6, "min_distinct_sources": 1}}`), 0o644))
	_, err = LoadRegistry(PolicyConfig{TableFile: noFallback})
	assert.Error(t, err)
}
