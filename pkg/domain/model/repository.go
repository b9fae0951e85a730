package model

import (
	"time"
)

// Repository represents a GitHub repository owned by the audited organization
type Repository struct {
	FullName string
	Owner    string
	Name     string
}

// Secret represents a GitHub Actions repository secret. The value is never available, only its metadata.
type Secret struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
