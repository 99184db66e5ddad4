package variants

import (
	"encoding/json"
	"net/http"
)

// NewHandler exposes a Store over HTTP so multiple interactive sessions can
// share one variant store. It uses Go 1.22+ ServeMux pattern matching for
// method+path routing.
func NewHandler(store Store) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /v1/libraries/{library}/profiles", func(w http.ResponseWriter, r *http.Request) {
		profiles, err := store.List(r.PathValue("library"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if profiles == nil {
			profiles = []Profile{}
		}
		writeJSON(w, http.StatusOK, profiles)
	})

	mux.HandleFunc("GET /v1/libraries/{library}/profiles/{icon}", func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Get(r.PathValue("library"), r.PathValue("icon"))
		if err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "profile not found: "+r.PathValue("icon"))
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
	})

	// Upsert: the store is last-write-wins, so PUT never conflicts.
	mux.HandleFunc("PUT /v1/libraries/{library}/profiles/{icon}", func(w http.ResponseWriter, r *http.Request) {
		var p Profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		p.Icon = r.PathValue("icon")
		if err := store.Put(r.PathValue("library"), p); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
	})

	mux.HandleFunc("DELETE /v1/libraries/{library}/profiles/{icon}", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.PathValue("library"), r.PathValue("icon")); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
