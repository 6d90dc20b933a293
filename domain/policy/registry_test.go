package policy

import (
	"testing"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// TestBuiltinProfileValues tests the default persona table
func TestBuiltinProfileValues(t *testing.T) {
	reg := NewDefaultRegistry()

	tests := []struct {
		persona             string
		citationsRequired   bool
		similarityThreshold float64
		minDistinctSources  int
		primarySourcesOnly  bool
		strictMode          bool
	}{
		{"educator", true, 0.80, 2, false, true},
		{"researcher", true, 0.75, 3, true, true},
		{"creator", false, 0.60, 1, false, false},
		{"builder", false, 0.65, 1, false, false},
	}

	for _, test := range tests {
		p, known := reg.Lookup(core.PersonaKey(test.persona))
		if !known {
			t.Fatalf("%s: expected built-in profile", test.persona)
		}
		if p.CitationsRequired != test.citationsRequired {
			t.Errorf("%s: citations_required = %t", test.persona, p.CitationsRequired)
		}
		if p.SimilarityThreshold != test.similarityThreshold {
			t.Errorf("%s: similarity_threshold = %f", test.persona, p.SimilarityThreshold)
		}
		if p.MinDistinctSources != test.minDistinctSources {
			t.Errorf("%s: min_distinct_sources = %d", test.persona, p.MinDistinctSources)
		}
		if p.PrimarySourcesOnly != test.primarySourcesOnly {
			t.Errorf("%s: primary_sources_only = %t", test.persona, p.PrimarySourcesOnly)
		}
		if p.StrictMode != test.strictMode {
			t.Errorf("%s: strict_mode = %t", test.persona, p.StrictMode)
		}
	}
}

// TestUnknownPersonaFallsBack tests the conservative fallback
func TestUnknownPersonaFallsBack(t *testing.T) {
	reg := NewDefaultRegistry()
	p, known := reg.Lookup("archivist")
	if known {
		t.Error("Expected unknown persona to be reported as unknown")
	}
	if p.Name != PersonaResearcher {
		t.Errorf("Expected researcher fallback, got %q", p.Name)
	}

	resolved, err := reg.Resolve("archivist", Toggles{}, Overrides{})
	if err != nil {
		t.Fatalf("Fallback must not error: %v", err)
	}
	if resolved.MinDistinctSources != 3 || !resolved.PrimarySourcesOnly {
		t.Errorf("Fallback did not resolve to the researcher profile: %+v", resolved)
	}
}

// TestLayeringOrder tests profile -> toggles -> overrides layering
func TestLayeringOrder(t *testing.T) {
	reg := NewDefaultRegistry()

	resolved, err := reg.Resolve("educator",
		Toggles{RequireCitations: boolPtr(false), PrimarySourcesOnly: boolPtr(true)},
		Overrides{MinDistinctSources: intPtr(5), SimilarityThreshold: floatPtr(0.55)},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resolved.CitationsRequired {
		t.Error("Toggle should have disabled citations_required")
	}
	if !resolved.PrimarySourcesOnly {
		t.Error("Toggle should have enabled primary_sources_only")
	}
	if resolved.MinDistinctSources != 5 {
		t.Errorf("Override should have set min_distinct_sources to 5, got %d", resolved.MinDistinctSources)
	}
	if resolved.SimilarityThreshold != 0.55 {
		t.Errorf("Override should have set similarity_threshold to 0.55, got %f", resolved.SimilarityThreshold)
	}
	if !resolved.StrictMode {
		t.Error("strict_mode must pass through unchanged")
	}

	// Built-in table must stay untouched
	base, _ := reg.Lookup(PersonaEducator)
	if !base.CitationsRequired || base.MinDistinctSources != 2 {
		t.Errorf("Registry profile was mutated: %+v", base)
	}
}

// TestUnsetTogglesFallThrough tests that unset fields keep profile defaults
func TestUnsetTogglesFallThrough(t *testing.T) {
	reg := NewDefaultRegistry()
	resolved, err := reg.Resolve("researcher", Toggles{}, Overrides{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	base, _ := reg.Lookup(PersonaResearcher)
	if resolved != base {
		t.Errorf("Expected untouched profile, got %+v", resolved)
	}
}

// TestOverrideValidation tests the caller contract on numeric overrides
func TestOverrideValidation(t *testing.T) {
	reg := NewDefaultRegistry()

	tests := []struct {
		name      string
		overrides Overrides
		wantErr   bool
	}{
		{"zero min sources", Overrides{MinDistinctSources: intPtr(0)}, true},
		{"negative min sources", Overrides{MinDistinctSources: intPtr(-2)}, true},
		{"threshold too high", Overrides{SimilarityThreshold: floatPtr(1.2)}, true},
		{"threshold negative", Overrides{SimilarityThreshold: floatPtr(-0.1)}, true},
		{"valid", Overrides{MinDistinctSources: intPtr(1), SimilarityThreshold: floatPtr(1.0)}, false},
	}

	for _, test := range tests {
		_, err := reg.Resolve("educator", Toggles{}, test.overrides)
		if test.wantErr && !IsOverrideError(err) {
			t.Errorf("%s: expected override error, got %v", test.name, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
		}
	}
}

// TestRegistryConstructionValidation tests profile table constraints
func TestRegistryConstructionValidation(t *testing.T) {
	base := BuiltinProfiles()

	if _, err := NewRegistry(append(base, Profile{Name: "educator", MinDistinctSources: 1})); err == nil {
		t.Error("Expected duplicate persona to be rejected")
	}
	if _, err := NewRegistry([]Profile{{Name: "creator", MinDistinctSources: 1, SimilarityThreshold: 0.5}}); err == nil {
		t.Error("Expected table without the fallback persona to be rejected")
	}
	if _, err := NewRegistry(append(base, Profile{Name: "extra", MinDistinctSources: 0, SimilarityThreshold: 0.5})); err == nil {
		t.Error("Expected min_distinct_sources < 1 to be rejected")
	}
}
