package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category classifies a badge.
type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryOrganizational Category = "organizational"
	CategorySoftSkilled    Category = "soft-skilled"
)

// Level is the badge tier.
type Level string

const (
	LevelGold   Level = "gold"
	LevelSilver Level = "silver"
	LevelBronze Level = "bronze"
)

// BadgeStatus is the publication state of a badge. Only active badges are
// visible to non-admin callers.
type BadgeStatus string

const (
	StatusActive   BadgeStatus = "active"
	StatusDraft    BadgeStatus = "draft"
	StatusArchived BadgeStatus = "archived"
)

var ErrValidation = errors.New("validation failed")
var ErrForbidden = errors.New("access forbidden")
var ErrBadgeNotFound = errors.New("badge not found")
var ErrUnknownCreator = errors.New("created_by does not reference an existing user")

// ParseCategory resolves a caller-supplied category value to its canonical
// form. Comparison is case-insensitive and ignores "-"/"_" separators, so
// "softskilled" and "soft_skilled" both resolve to "soft-skilled".
func ParseCategory(s string) (Category, error) {
	switch normalizeEnum(s) {
	case "technical":
		return CategoryTechnical, nil
	case "organizational":
		return CategoryOrganizational, nil
	case "softskilled":
		return CategorySoftSkilled, nil
	}
	return "", fieldError("category", s)
}

// ParseLevel resolves a caller-supplied level value to its canonical form.
func ParseLevel(s string) (Level, error) {
	switch normalizeEnum(s) {
	case "gold":
		return LevelGold, nil
	case "silver":
		return LevelSilver, nil
	case "bronze":
		return LevelBronze, nil
	}
	return "", fieldError("level", s)
}

// ParseBadgeStatus resolves a caller-supplied status value to its canonical form.
func ParseBadgeStatus(s string) (BadgeStatus, error) {
	switch normalizeEnum(s) {
	case "active":
		return StatusActive, nil
	case "draft":
		return StatusDraft, nil
	case "archived":
		return StatusArchived, nil
	}
	return "", fieldError("status", s)
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

func fieldError(field, value string) error {
	return &FieldError{Field: field, Value: value}
}

// FieldError is a validation failure on a single named parameter. It wraps
// ErrValidation so callers can match with errors.Is while the transport
// layer reports the offending field.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// Badge is the catalog entry. CreatedBy must reference an existing User at
// write time; the repository enforces this before insert.
type Badge struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Category    Category    `json:"category" bson:"category"`
	Level       Level       `json:"level" bson:"level"`
	Status      BadgeStatus `json:"status" bson:"status"`
	CreatedBy   string      `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
