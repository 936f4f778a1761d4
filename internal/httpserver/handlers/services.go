package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/mafl/internal/httpserver/deps"
	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/storage"
	"github.com/MrSnakeDoc/mafl/internal/store"
)

// Services serves the service-by-id index, computed fresh from the
// persisted configuration's full group sequence.
func Services(d deps.Deps) http.HandlerFunc {
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

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(store.ExtractServices(cfg)); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
