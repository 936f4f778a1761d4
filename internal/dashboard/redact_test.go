package dashboard

import (
	"testing"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

func TestRedactSecretsStripsAllDepths(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Services = []domain.ServiceGroup{
		{
			Title: "Media",
			Items: []domain.Service{
				{
					ID:      "a",
					Title:   "Jellyfin",
					Secrets: map[string]string{"apikey": "s3cret"},
				},
				{ID: "b", Title: "AdGuard"},
			},
		},
	}

	safe, err := RedactSecrets(cfg)
	if err != nil {
		t.Fatalf("RedactSecrets() error = %v", err)
	}

	groups := safe["services"].([]interface{})
	items := groups[0].(map[string]interface{})["items"].([]interface{})
	first := items[0].(map[string]interface{})

	if _, ok := first["secrets"]; ok {
		t.Error("secrets field survived redaction")
	}
	if first["title"] != "Jellyfin" {
		t.Errorf("non-secret fields must survive, got %+v", first)
	}

	// Input must not be mutated.
	if cfg.Services[0].Items[0].Secrets["apikey"] != "s3cret" {
		t.Error("RedactSecrets() mutated its input")
	}
}

func TestRedactSecretsKeepsStructure(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Theme = "dark"

	safe, err := RedactSecrets(cfg)
	if err != nil {
		t.Fatalf("RedactSecrets() error = %v", err)
	}

	if safe["theme"] != "dark" {
		t.Errorf("theme = %v, want dark", safe["theme"])
	}
	layout := safe["layout"].(map[string]interface{})
	grid := layout["grid"].(map[string]interface{})
	if grid["small"].(float64) != 2 {
		t.Errorf("grid.small = %v, want 2", grid["small"])
	}
}
