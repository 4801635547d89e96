package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 1280, cfg.Browser.ViewportWidth)
	assert.Equal(t, 720, cfg.Browser.ViewportHeight)
	assert.Equal(t, "de-DE", cfg.Browser.Locale)
	assert.Equal(t, 60*time.Second, cfg.Browser.DefaultTimeout)

	assert.Equal(t, 45*time.Second, cfg.Scraper.NavigationTimeout)
	assert.Equal(t, 5*time.Second, cfg.Scraper.TitleWaitTimeout)
	assert.Equal(t, 5, cfg.Scraper.MaxPageCount)
	assert.Equal(t, 25, cfg.Scraper.MaxCardsPerPage)

	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("KLAZ_MAX_PAGE_COUNT", "3")
	t.Setenv("KLAZ_NAV_TIMEOUT", "10s")
	t.Setenv("KLAZ_API_KEYS", "key-a, key-b")
	t.Setenv("KLAZ_BLOCKED_RESOURCES", "Image")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Scraper.MaxPageCount)
	assert.Equal(t, 10*time.Second, cfg.Scraper.NavigationTimeout)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.Auth.APIKeys)
	assert.Equal(t, []string{"Image"}, cfg.Browser.BlockedResourceTypes)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("KLAZ_HEADLESS", "maybe")

	cfg := Load()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.True(t, cfg.Browser.Headless)
}
