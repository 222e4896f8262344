package testutil

import (
	"sync"
	"time"

	"nli/internal/models"
	"nli/internal/providers"
	"nli/internal/services"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockLoader implements services.LoaderInterface over fixed slices, with
// optional error injection per collection.
type MockLoader struct {
	Accounts []models.Account
	Profiles []models.ChildProfile
	Installs []models.InstallRecord

	AccountsErr error
	ProfilesErr error
	InstallsErr error
}

func (m *MockLoader) LoadAccounts() ([]models.Account, error) {
	return m.Accounts, m.AccountsErr
}

func (m *MockLoader) LoadProfiles() ([]models.ChildProfile, error) {
	return m.Profiles, m.ProfilesErr
}

func (m *MockLoader) LoadInstalls() ([]models.InstallRecord, error) {
	return m.Installs, m.InstallsErr
}

func (m *MockLoader) LoadAccountByID(id string) (*models.Account, error) {
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			return &m.Accounts[i], nil
		}
	}
	return nil, services.ErrAccountNotFound
}

// MockCache is an in-memory providers.CacheProviderInterface.
type MockCache struct {
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.Data[key] = value
}

// MockMetrics is a no-op providers.MetricsProviderInterface that counts
// snapshot observations.
type MockMetrics struct {
	SnapshotObservations int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveSnapshotDuration(_ time.Duration)          { m.SnapshotObservations++ }
func (m *MockMetrics) SetEntitiesTotal(_ string, _ int)                 {}
