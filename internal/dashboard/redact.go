package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

// RedactSecrets projects the configuration into a JSON-compatible structure
// with every field named "secrets" removed at any depth. The input is never
// mutated; the projection is built from a fresh copy.
func RedactSecrets(cfg *domain.CompleteConfig) (map[string]interface{}, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to rebuild configuration: %w", err)
	}

	stripSecrets(out)
	return out, nil
}

func stripSecrets(value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		delete(v, "secrets")
		for _, nested := range v {
			stripSecrets(nested)
		}
	case []interface{}:
		for _, nested := range v {
			stripSecrets(nested)
		}
	}
}
