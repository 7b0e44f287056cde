// Package app orchestrates the nightly pipeline: scrape the council site,
// extract the collection dates, normalize them into relative strings, then
// hand the record to the consumers (terminal, run journal, API server).
package app

import (
	"fmt"
	"log"
	"sort"
	"time"

	"BinDay/internal/database"
	"BinDay/internal/extractor"
	"BinDay/internal/models"
	"BinDay/internal/normalizer"
	"BinDay/internal/scraper/westberks"
	"BinDay/pkg/config"
)

const Version = "1.0"

// App holds the pipeline's dependencies.
type App struct {
	Config *config.Config
	Repo   *database.DBRepository
}

// New loads config and opens the run journal.
func New(configPath string) *App {
	cfg := config.LoadConfig(configPath)
	repo := database.InitDB(cfg.Database.Path)
	return &App{
		Config: cfg,
		Repo:   repo,
	}
}

// RunPipeline performs one scrape → extract → normalize pass and shows the
// result. A stage error skips the remaining stages; the error record goes to
// the consumer as-is. No retry here — the scheduler owns retry policy.
func (a *App) RunPipeline() {
	ranAt := time.Now()
	site := a.Config.Site

	log.Println("[1/4] Scraping collection dates")
	scraper := westberks.New(site, a.Config.Scraper)
	fragment, serr := scraper.Fetch()
	if serr != nil {
		log.Println("[1/4] Scraping failed!")
		log.Printf("Debug: URL = %s", site.URL)
		log.Printf("Debug: POSTCODE = %s", site.Postcode)
		log.Printf("Debug: ADDRESS_VALUE = %s", site.AddressValue)
		a.finish(ranAt, nil, serr)
		return
	}

	log.Println("[2/4] Extracting dates from HTML")
	ext := extractor.New(site.Selectors, site.Markers)
	collection, serr := ext.Extract(fragment)
	if serr != nil {
		log.Println("[2/4] Extraction failed!")
		a.finish(ranAt, nil, serr)
		return
	}

	log.Println("[3/4] Normalizing dates")
	collection = normalizer.Normalize(collection)

	a.finish(ranAt, collection, nil)
}

// finish records the run and prints the display record.
func (a *App) finish(ranAt time.Time, collection models.Collection, serr *models.StageError) {
	log.Println("[4/4] Updating display")

	run := models.Run{
		RanAt:    ranAt,
		Postcode: a.Config.Site.Postcode,
	}
	if serr != nil {
		run.ErrorCode = string(serr.Code)
	} else {
		run.Rubbish = collection[models.Rubbish]
		run.Recycling = collection[models.Recycling]
		run.Food = collection[models.Food]
	}
	if err := a.Repo.SaveRun(run); err != nil {
		log.Printf("WARN: could not record run: %v", err)
	}

	printRecord(run.Record())
}

// ShowLatest prints the most recent recorded run without scraping.
func (a *App) ShowLatest() {
	run, err := a.Repo.LatestRun()
	if err != nil {
		log.Fatalf("No recorded runs: %v", err)
	}
	log.Printf("Last run at %s for %s", run.RanAt.Format("2006-01-02 15:04:05"), run.Postcode)
	printRecord(run.Record())
}

func printRecord(record map[string]string) {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-10s %s\n", k, record[k])
	}
}
