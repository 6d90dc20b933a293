package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	DecisionID ID
	ChunkID    ID
	SourceID   ID
	PersonaKey ID
)

// String conversions for domain IDs
func (id DecisionID) String() string { return ID(id).String() }
func (id ChunkID) String() string    { return ID(id).String() }
func (id SourceID) String() string   { return ID(id).String() }
func (k PersonaKey) String() string  { return ID(k).String() }

// ParseDecisionID parses a string into DecisionID
func ParseDecisionID(s string) (DecisionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("decision ID cannot be empty")
	}
	return DecisionID(s), nil
}

// ParsePersonaKey parses a string into PersonaKey, normalizing case and whitespace
func ParsePersonaKey(s string) (PersonaKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("persona key cannot be empty")
	}
	return PersonaKey(strings.ToLower(strings.TrimSpace(s))), nil
}
