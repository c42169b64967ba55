package main

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func TestConfigRoundTrip(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := NewConfig("vantage-test")
	if !assert.NoError(err) {
		return
	}
	config.Endpoint = "https://controller.example.com/api/v1"
	config.Key = "secret-token"
	config.Site = "warehouse"
	assert.NoError(config.Save())

	// A fresh config for the same application picks up the persisted values
	reloaded, err := NewConfig("vantage-test")
	if assert.NoError(err) {
		assert.Equal(config.Endpoint, reloaded.Endpoint)
		assert.Equal(config.Key, reloaded.Key)
		assert.Equal(config.Site, reloaded.Site)
	}
}

func TestConfigMissingFile(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// A missing file is not an error; the config starts empty
	config, err := NewConfig("vantage-test")
	if assert.NoError(err) {
		assert.Empty(config.Endpoint)
		assert.Empty(config.Key)
	}
}
