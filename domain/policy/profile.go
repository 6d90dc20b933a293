package policy

import (
	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

// Built-in persona keys
const (
	PersonaEducator   core.PersonaKey = "educator"
	PersonaResearcher core.PersonaKey = "researcher"
	PersonaCreator    core.PersonaKey = "creator"
	PersonaBuilder    core.PersonaKey = "builder"
)

// Profile is the policy applied to one persona. Profiles are immutable after
// registry construction; per-request layering always copies.
type Profile struct {
	Name                core.PersonaKey `json:"name" db:"name"`
	CitationsRequired   bool            `json:"citations_required" db:"citations_required"`
	SimilarityThreshold float64         `json:"similarity_threshold" db:"similarity_threshold"`
	MinDistinctSources  int             `json:"min_distinct_sources" db:"min_distinct_sources"`
	PrimarySourcesOnly  bool            `json:"primary_sources_only" db:"primary_sources_only"`
	// StrictMode is reserved for future tie-break tightening. It is resolved,
	// logged, and exported, but no gate reads it.
	StrictMode bool `json:"strict_mode" db:"strict_mode"`
}

// Toggles are per-request boolean overrides. A set field replaces the
// corresponding profile field for exactly this request.
type Toggles struct {
	RequireCitations   *bool `json:"require_citations,omitempty"`
	PrimarySourcesOnly *bool `json:"primary_sources_only,omitempty"`
	CreativeMode       *bool `json:"creative_mode,omitempty"`
}

// CreativeModeEnabled reports whether the creative bypass was requested
func (t Toggles) CreativeModeEnabled() bool {
	return t.CreativeMode != nil && *t.CreativeMode
}

// CitationsForced reports whether the request explicitly forces citations on.
// A forced-on requirement disables the creative bypass.
func (t Toggles) CitationsForced() bool {
	return t.RequireCitations != nil && *t.RequireCitations
}

// Overrides are per-request numeric threshold overrides, layered after toggles
type Overrides struct {
	MinDistinctSources  *int     `json:"custom_min_sources,omitempty"`
	SimilarityThreshold *float64 `json:"custom_similarity_threshold,omitempty"`
}

// Validate checks the caller contract on numeric overrides
func (o Overrides) Validate() error {
	if o.MinDistinctSources != nil && *o.MinDistinctSources <= 0 {
		return NewOverrideError("custom_min_sources", "must be a positive integer")
	}
	if o.SimilarityThreshold != nil && (*o.SimilarityThreshold < 0.0 || *o.SimilarityThreshold > 1.0) {
		return NewOverrideError("custom_similarity_threshold", "must be within [0.0, 1.0]")
	}
	return nil
}

// Layer produces the effective profile for one request: profile defaults,
// then boolean toggles, then numeric overrides. The receiver is never mutated.
func (p Profile) Layer(toggles Toggles, overrides Overrides) Profile {
	effective := p
	if toggles.RequireCitations != nil {
		effective.CitationsRequired = *toggles.RequireCitations
	}
	if toggles.PrimarySourcesOnly != nil {
		effective.PrimarySourcesOnly = *toggles.PrimarySourcesOnly
	}
	if overrides.MinDistinctSources != nil {
		effective.MinDistinctSources = *overrides.MinDistinctSources
	}
	if overrides.SimilarityThreshold != nil {
		effective.SimilarityThreshold = *overrides.SimilarityThreshold
	}
	return effective
}
