package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"BinDay/internal/database"
	"BinDay/pkg/config"
)

// Start serves the run journal over HTTP for consumers that are not looking
// at the terminal (or the e-ink panel).
func Start(repo *database.DBRepository, cfg *config.Config) {
	http.HandleFunc("/collections", collectionsHandler(repo))
	http.HandleFunc("/runs", runsHandler(repo))

	port := cfg.Server.Port
	log.Printf("Starting API server on port %s", port)
	log.Printf("Endpoints available at http://localhost:%s/collections and /runs", port)

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// collectionsHandler returns the latest run in the display contract shape:
// either the category map or {"Error": <code>}.
func collectionsHandler(repo *database.DBRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := repo.LatestRun()
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "No runs recorded yet", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Failed to read latest run", http.StatusInternalServerError)
			return
		}
		writeJSON(w, run.Record())
	}
}

// runEntry is one history row of the /runs response.
type runEntry struct {
	RanAt    time.Time         `json:"ran_at"`
	Postcode string            `json:"postcode"`
	Result   map[string]string `json:"result"`
}

func runsHandler(repo *database.DBRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = 20
		}

		runs, err := repo.RecentRuns(limit)
		if err != nil {
			http.Error(w, "Failed to read runs", http.StatusInternalServerError)
			return
		}

		entries := make([]runEntry, 0, len(runs))
		for _, run := range runs {
			entries = append(entries, runEntry{
				RanAt:    run.RanAt,
				Postcode: run.Postcode,
				Result:   run.Record(),
			})
		}
		writeJSON(w, entries)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
