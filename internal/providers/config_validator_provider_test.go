package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nli/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Dataset: structures.DatasetConfig{
			FilePath:       "/var/lib/nli/dataset.json",
			ReloadInterval: 5 * time.Minute,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingDatasetPath(t *testing.T) {
	c := validConfig()
	c.Dataset.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "loud"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
