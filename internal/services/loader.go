package services

import (
	"errors"

	"nli/internal/models"
)

// ErrAccountNotFound is returned by LoadAccountByID for unknown ids.
var ErrAccountNotFound = errors.New("account not found")

// LoaderInterface is the boundary to the raw data store. All collections are
// returned as immutable in-memory snapshots; the engine never mutates them.
type LoaderInterface interface {
	LoadAccounts() ([]models.Account, error)
	LoadProfiles() ([]models.ChildProfile, error)
	// LoadInstalls may legitimately fail or be absent; callers degrade to
	// zero installs.
	LoadInstalls() ([]models.InstallRecord, error)
	LoadAccountByID(id string) (*models.Account, error)
}
