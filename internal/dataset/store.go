package dataset

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"nli/internal/dataset/interfaces"
	"nli/internal/models"
	"nli/internal/providers"
	"nli/internal/services"
	"nli/internal/structures"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// datasetFile is the on-disk envelope: one JSON document holding the three
// raw collections, optionally zstd-compressed.
type datasetFile struct {
	Accounts []models.Account       `json:"accounts"`
	Children []models.ChildProfile  `json:"children"`
	Installs []models.InstallRecord `json:"installs"`
}

// Store loads the dataset file into memory and serves the collections to the
// aggregation engine. Reload swaps the whole dataset atomically under the
// lock; readers always see one consistent snapshot.
type Store struct {
	mu         sync.RWMutex
	data       datasetFile
	byID       map[string]*models.Account
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Store {
	return &Store{
		path:       conf.Dataset.FilePath,
		compressor: compressor,
		logger:     logger,
	}
}

// Reload re-reads the dataset file and replaces the in-memory collections.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	if bytes.HasPrefix(raw, zstdMagic) {
		raw, err = s.compressor.Decompress(raw)
		if err != nil {
			return fmt.Errorf("decompress dataset: %w", err)
		}
	}

	var data datasetFile
	if err = json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}

	byID := make(map[string]*models.Account, len(data.Accounts))
	for i := range data.Accounts {
		byID[data.Accounts[i].ID] = &data.Accounts[i]
	}

	s.mu.Lock()
	s.data = data
	s.byID = byID
	s.mu.Unlock()

	s.logger.Infof(providers.TypeApp, "Dataset loaded: %d accounts, %d children, %d installs",
		len(data.Accounts), len(data.Children), len(data.Installs))
	return nil
}

func (s *Store) LoadAccounts() ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Accounts, nil
}

func (s *Store) LoadProfiles() ([]models.ChildProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Children, nil
}

func (s *Store) LoadInstalls() ([]models.InstallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Installs, nil
}

func (s *Store) LoadAccountByID(id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, services.ErrAccountNotFound
}

func (s *Store) AccountCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Accounts)
}

func (s *Store) ChildCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Children)
}

func (s *Store) InstallCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Installs)
}

// NewLoader exposes the store under the service-facing loader boundary.
func NewLoader(store *Store) services.LoaderInterface {
	return store
}

