package configs

import (
	"os"
	"testing"
)

// setupWeddingEnv sets wedding environment overrides for config unmarshaling
func setupWeddingEnv() {
	os.Setenv("WEDDING_MIN_NAME_LENGTH", "3")
	os.Setenv("WEDDING_MAX_GUESTS", "10")
	os.Setenv("WEDDING_CARDS_PATH", "/srv/cards")
}

// cleanupWeddingEnv cleans up environment variables after tests
func cleanupWeddingEnv() {
	os.Unsetenv("WEDDING_MIN_NAME_LENGTH")
	os.Unsetenv("WEDDING_MAX_GUESTS")
	os.Unsetenv("WEDDING_CARDS_PATH")
}

// TestWeddingConfigFromFile tests that the committed config file supplies the
// flow thresholds and card path
func TestWeddingConfigFromFile(t *testing.T) {
	cleanupWeddingEnv()

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Wedding.MinNameLength != 2 {
		t.Errorf("Expected Wedding.MinNameLength to be 2, got %d", cfg.Wedding.MinNameLength)
	}
	if cfg.Wedding.MaxGuests != 20 {
		t.Errorf("Expected Wedding.MaxGuests to be 20, got %d", cfg.Wedding.MaxGuests)
	}
	if cfg.Wedding.CardsPath != "./assets/cards" {
		t.Errorf("Expected Wedding.CardsPath to be './assets/cards', got %s", cfg.Wedding.CardsPath)
	}
}

// TestWeddingConfigOverridesFromEnv tests that environment variables win over
// the config file for the wedding section
func TestWeddingConfigOverridesFromEnv(t *testing.T) {
	setupWeddingEnv()
	defer cleanupWeddingEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Wedding.MinNameLength != 3 {
		t.Errorf("Expected Wedding.MinNameLength to be 3, got %d", cfg.Wedding.MinNameLength)
	}
	if cfg.Wedding.MaxGuests != 10 {
		t.Errorf("Expected Wedding.MaxGuests to be 10, got %d", cfg.Wedding.MaxGuests)
	}
	if cfg.Wedding.CardsPath != "/srv/cards" {
		t.Errorf("Expected Wedding.CardsPath to be '/srv/cards', got %s", cfg.Wedding.CardsPath)
	}
}

// TestLineConfigOverridesFromEnv tests that LINE credentials can be supplied
// by the environment instead of the committed file
func TestLineConfigOverridesFromEnv(t *testing.T) {
	os.Setenv("LINE_CHANNEL_SECRET", "secret-from-env")
	os.Setenv("LINE_CHANNEL_TOKEN", "token-from-env")
	defer func() {
		os.Unsetenv("LINE_CHANNEL_SECRET")
		os.Unsetenv("LINE_CHANNEL_TOKEN")
	}()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Line.ChannelSecret != "secret-from-env" {
		t.Errorf("Expected Line.ChannelSecret to come from env, got %s", cfg.Line.ChannelSecret)
	}
	if cfg.Line.ChannelToken != "token-from-env" {
		t.Errorf("Expected Line.ChannelToken to come from env, got %s", cfg.Line.ChannelToken)
	}
}
