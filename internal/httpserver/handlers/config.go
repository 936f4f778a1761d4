package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/mafl/internal/dashboard"
	"github.com/MrSnakeDoc/mafl/internal/httpserver/deps"
	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/storage"
)

// Config serves the persisted configuration with every secrets field
// stripped. It reads exactly what was last saved; it never triggers a load.
func Config(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := d.Store.Read(r.Context())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "no configuration saved")
				return
			}
			d.Logger.Error("failed to read configuration", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to read configuration")
			return
		}

		safe, err := dashboard.RedactSecrets(cfg)
		if err != nil {
			d.Logger.Error("failed to redact configuration", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to project configuration")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(safe); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
