// Package westberks drives the West Berkshire council "find your next
// collection day" form through a headless browser and returns the raw HTML
// of the results container. It fetches; it does not interpret.
package westberks

import (
	"context"
	"errors"
	"log"
	"time"

	"BinDay/internal/models"
	"BinDay/pkg/config"
)

// driver abstracts the browser interactions behind the step sequence so the
// timeout/failure-code table can be exercised with a fake in tests.
type driver interface {
	navigate(url string, timeout time.Duration) error
	fillPostcode(postcode string) error
	submit() error
	waitAddresses(timeout time.Duration) error
	selectAddress(value string) error
	waitResults(timeout time.Duration) error
	resultsHTML() (string, error)
	close()
}

// Scraper runs the fixed form-automation sequence against one council site.
type Scraper struct {
	Site config.SiteConfig
	Conf config.ScraperConfig

	// newDriver is swapped out in tests.
	newDriver func() (driver, error)
}

// New creates a Scraper backed by a real headless browser.
func New(site config.SiteConfig, conf config.ScraperConfig) *Scraper {
	s := &Scraper{Site: site, Conf: conf}
	s.newDriver = func() (driver, error) {
		return newRodDriver(conf.Headless, site.Selectors)
	}
	return s
}

// Fetch performs one scrape and returns the inner HTML of the results
// container. Each call is independent: a fresh browser is launched, the six
// steps run in order, and the browser is released on every exit path. There
// is no retry here; retry policy belongs to the caller.
//
// Error mapping: a timeout on one of the three explicit waits (navigation,
// address dropdown, results container) reports Browser; any other failure,
// including panics out of the browser layer, reports Unknown.
func (s *Scraper) Fetch() (html string, serr *models.StageError) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Scrape panicked: %v", r)
			html = ""
			serr = &models.StageError{Code: models.CodeUnknown}
		}
	}()

	d, err := s.newDriver()
	if err != nil {
		log.Printf("Failed to start browser: %v", err)
		return "", &models.StageError{Code: models.CodeUnknown, Cause: err}
	}
	defer d.close()

	steps := []struct {
		name  string
		timed bool
		run   func() error
	}{
		{"navigate", true, func() error {
			return d.navigate(s.Site.URL, s.Conf.NavTimeoutDuration())
		}},
		{"fill postcode", false, func() error {
			return d.fillPostcode(s.Site.Postcode)
		}},
		{"submit search", false, d.submit},
		{"wait for addresses", true, func() error {
			return d.waitAddresses(s.Conf.DropdownTimeoutDuration())
		}},
		{"select address", false, func() error {
			return d.selectAddress(s.Site.AddressValue)
		}},
		{"wait for results", true, func() error {
			return d.waitResults(s.Conf.ResultsTimeoutDuration())
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Printf("Scrape step %q failed: %v", step.name, err)
			if step.timed && errors.Is(err, context.DeadlineExceeded) {
				return "", &models.StageError{Code: models.CodeBrowser, Cause: err}
			}
			return "", &models.StageError{Code: models.CodeUnknown, Cause: err}
		}
	}

	html, err = d.resultsHTML()
	if err != nil {
		log.Printf("Failed to read results container: %v", err)
		return "", &models.StageError{Code: models.CodeUnknown, Cause: err}
	}
	return html, nil
}
