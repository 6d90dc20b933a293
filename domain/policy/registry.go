package policy

import (
	"fmt"
	"log"
	"sort"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

// FallbackPersona is the profile unknown persona keys resolve to. The
// researcher profile is the strictest built-in, so an unrecognized caller
// never receives a looser policy than any known one.
const FallbackPersona = PersonaResearcher

// BuiltinProfiles returns the process-default persona table
func BuiltinProfiles() []Profile {
	return []Profile{
		{Name: PersonaEducator, CitationsRequired: true, SimilarityThreshold: 0.80, MinDistinctSources: 2, PrimarySourcesOnly: false, StrictMode: true},
		{Name: PersonaResearcher, CitationsRequired: true, SimilarityThreshold: 0.75, MinDistinctSources: 3, PrimarySourcesOnly: true, StrictMode: true},
		{Name: PersonaCreator, CitationsRequired: false, SimilarityThreshold: 0.60, MinDistinctSources: 1, PrimarySourcesOnly: false, StrictMode: false},
		{Name: PersonaBuilder, CitationsRequired: false, SimilarityThreshold: 0.65, MinDistinctSources: 1, PrimarySourcesOnly: false, StrictMode: false},
	}
}

// Registry holds the immutable persona profile table. Built once at process
// start; Resolve never mutates it.
type Registry struct {
	profiles map[core.PersonaKey]Profile
}

// NewRegistry builds a registry from an explicit profile set
func NewRegistry(profiles []Profile) (*Registry, error) {
	table := make(map[core.PersonaKey]Profile, len(profiles))
	for _, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile with empty persona key")
		}
		if p.MinDistinctSources < 1 {
			return nil, fmt.Errorf("profile %q: min_distinct_sources must be >= 1", p.Name)
		}
		if p.SimilarityThreshold < 0.0 || p.SimilarityThreshold > 1.0 {
			return nil, fmt.Errorf("profile %q: similarity_threshold must be within [0.0, 1.0]", p.Name)
		}
		if _, dup := table[p.Name]; dup {
			return nil, fmt.Errorf("duplicate profile for persona %q", p.Name)
		}
		table[p.Name] = p
	}
	if _, ok := table[FallbackPersona]; !ok {
		return nil, fmt.Errorf("profile table must include the fallback persona %q", FallbackPersona)
	}
	return &Registry{profiles: table}, nil
}

// NewDefaultRegistry builds a registry from the built-in table
func NewDefaultRegistry() *Registry {
	reg, err := NewRegistry(BuiltinProfiles())
	if err != nil {
		// Built-in table is statically valid
		panic(err)
	}
	return reg
}

// Lookup returns the stored profile for a persona and whether it was known.
// Unknown personas fall back to the researcher profile.
func (r *Registry) Lookup(key core.PersonaKey) (Profile, bool) {
	if p, ok := r.profiles[key]; ok {
		return p, true
	}
	return r.profiles[FallbackPersona], false
}

// Resolve produces the effective profile for one request: built-in profile,
// then boolean toggles, then numeric overrides. Unknown personas resolve to
// the fallback profile with a warning, never an error; invalid overrides are
// a caller contract violation and fail fast.
func (r *Registry) Resolve(key core.PersonaKey, toggles Toggles, overrides Overrides) (Profile, error) {
	if err := overrides.Validate(); err != nil {
		return Profile{}, err
	}
	base, known := r.Lookup(key)
	if !known {
		log.Printf("WARN: unknown persona %q, falling back to %q profile", key, FallbackPersona)
	}
	return base.Layer(toggles, overrides), nil
}

// Personas returns the registered persona keys in sorted order
func (r *Registry) Personas() []core.PersonaKey {
	keys := make([]core.PersonaKey, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
