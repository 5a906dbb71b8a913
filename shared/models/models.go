package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyID = errors.New("empty id")

// ID represents a unique identifier. Checkout ids come from the storefront and are
// not required to be UUIDs; ids generated by this system always are.
type ID string

// GenerateUUID creates a new UUID
func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// NewID creates an ID from string
func NewID(id string) (ID, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	return ID(id), nil
}

// ParseUUID creates an ID from a string that must be a UUID
func ParseUUID(id string) (ID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return ID(parsed.String()), nil
}

// String returns string representation
func (id ID) String() string {
	return string(id)
}

// Timestamps represents creation and update times
type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewTimestamps creates new timestamps
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp
func (t Timestamps) Touch() Timestamps {
	t.UpdatedAt = time.Now().UTC()
	return t
}
