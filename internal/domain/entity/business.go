// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// BusinessStatus marks whether a record is visible to searches.
type BusinessStatus string

const (
	// StatusActive records are returned by every search and stat query.
	StatusActive BusinessStatus = "active"
	// StatusInactive is a soft-delete flag reserved for moderation.
	// No code path currently sets it.
	StatusInactive BusinessStatus = "inactive"
)

// EmailNotProvided is the sentinel stored when the owner skips the email step.
const EmailNotProvided = "Not provided"

// Business is a directory entry. Once inserted it is immutable except for
// Status; there is no update path for the user-supplied fields.
type Business struct {
	ID           string         // Backend surrogate key: serial id or document id.
	Name         string         // User-supplied display name.
	NameLower    string         // Derived lowercase copy of Name, set via SetName only.
	Address      string         // Free-form address, at least 10 characters at registration.
	Phone        string         // Raw trimmed input that passed phone validation.
	Email        string         // Validated email or EmailNotProvided.
	Keywords     []string       // Lowercase search terms in registration order, each longer than one rune.
	RegisteredBy string         // Sender address of the registering user.
	RegisteredAt time.Time      // Server-assigned insert timestamp.
	Status       BusinessStatus
}

// SetName stores the display name and recomputes the derived NameLower copy.
// NameLower must never be mutated independently.
func (b *Business) SetName(name string) {
	b.Name = name
	b.NameLower = strings.ToLower(name)
}

// String returns the string representation of the BusinessStatus.
func (s BusinessStatus) String() string {
	return string(s)
}
