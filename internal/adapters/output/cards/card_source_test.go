package cards

import (
	"errors"
	"testing"

	"wedding-line-bot/internal/domain"

	"github.com/spf13/afero"
)

func writeCard(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, "cards/"+name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write card fixture: %v", err)
	}
}

func TestCardReturnsPayload(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCard(t, fs, "travel.json", `{"type":"bubble"}`)

	source := NewFileCardSourceFS(fs, "cards")

	payload, err := source.Card("travel")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(payload) != `{"type":"bubble"}` {
		t.Errorf("Expected raw payload to be returned, got %s", payload)
	}
}

func TestCardFirstKeyWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCard(t, fs, "wedding.json", `{"type":"bubble","name":"wedding"}`)
	writeCard(t, fs, "main.json", `{"type":"bubble","name":"main"}`)

	source := NewFileCardSourceFS(fs, "cards")

	payload, err := source.Card("wedding", "wedding_details", "main")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(payload) != `{"type":"bubble","name":"wedding"}` {
		t.Errorf("Expected the first present key to win, got %s", payload)
	}
}

func TestCardFallsBackThroughMissingKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCard(t, fs, "main.json", `{"type":"bubble","name":"main"}`)

	source := NewFileCardSourceFS(fs, "cards")

	payload, err := source.Card("wedding", "wedding_details", "main")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(payload) != `{"type":"bubble","name":"main"}` {
		t.Errorf("Expected fallback to the last key, got %s", payload)
	}
}

func TestCardSkipsInvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCard(t, fs, "wedding.json", `{"type":"bubble"`)
	writeCard(t, fs, "main.json", `{"type":"bubble","name":"main"}`)

	source := NewFileCardSourceFS(fs, "cards")

	payload, err := source.Card("wedding", "main")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(payload) != `{"type":"bubble","name":"main"}` {
		t.Errorf("Expected invalid JSON to be skipped, got %s", payload)
	}
}

func TestCardExhaustedReturnsContentUnavailable(t *testing.T) {
	source := NewFileCardSourceFS(afero.NewMemMapFs(), "cards")

	_, err := source.Card("wedding", "wedding_details", "main")
	if !errors.Is(err, domain.ErrContentUnavailable) {
		t.Errorf("Expected ErrContentUnavailable, got %v", err)
	}
}
