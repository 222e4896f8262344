package models

// Account is one admin-visible user record. CreatedAt and DeletedAt carry
// whatever shape the source store produced (RFC3339 string, a
// seconds/nanoseconds object, or nothing) and are only interpreted through
// metrics.NormalizeDate.
type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt any    `json:"createdAt,omitempty"`
	Deleted   bool   `json:"deleted"`
	DeletedAt any    `json:"deletedAt,omitempty"`
}

// InstallRecord is one row of the optional app-install side collection.
type InstallRecord struct {
	Platform    string `json:"platform"`
	InstalledAt any    `json:"timestamp,omitempty"`
}
