package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	yml := `
site:
  url: "https://example.gov.uk/collections"
  postcode: "RG7 1AA"
  address_value: "100080123456"
scraper:
  headless: true
  nav_timeout: 30
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := LoadConfig(path)

	if cfg.Site.URL != "https://example.gov.uk/collections" {
		t.Errorf("URL = %q", cfg.Site.URL)
	}
	if cfg.Site.Postcode != "RG7 1AA" {
		t.Errorf("Postcode = %q", cfg.Site.Postcode)
	}
	if cfg.Site.AddressValue != "100080123456" {
		t.Errorf("AddressValue = %q", cfg.Site.AddressValue)
	}
	if !cfg.Scraper.Headless {
		t.Error("Headless should be true")
	}

	// Explicit value kept, omitted ones defaulted.
	if got := cfg.Scraper.NavTimeoutDuration(); got != 30*time.Second {
		t.Errorf("NavTimeoutDuration = %v, want 30s", got)
	}
	if got := cfg.Scraper.DropdownTimeoutDuration(); got != 20*time.Second {
		t.Errorf("DropdownTimeoutDuration = %v, want 20s", got)
	}
	if got := cfg.Scraper.ResultsTimeoutDuration(); got != 20*time.Second {
		t.Errorf("ResultsTimeoutDuration = %v, want 20s", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Site.Selectors.Block != ".rubbish_date_wrap" {
		t.Errorf("Block selector = %q", cfg.Site.Selectors.Block)
	}
	if cfg.Site.Markers.Recycling != "rubbish_collection_difs_green" {
		t.Errorf("Recycling marker = %q", cfg.Site.Markers.Recycling)
	}
	if cfg.Scraper.NavTimeout != 60 {
		t.Errorf("NavTimeout = %d, want 60", cfg.Scraper.NavTimeout)
	}
	if cfg.Database.Path != "binday.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
}

func TestApplyDefaultsKeepsExplicitSelectors(t *testing.T) {
	cfg := Config{}
	cfg.Site.Selectors.Block = ".bin_block"
	cfg.ApplyDefaults()

	if cfg.Site.Selectors.Block != ".bin_block" {
		t.Errorf("Block selector = %q, want .bin_block", cfg.Site.Selectors.Block)
	}
	// A partially-set selector struct is the caller's responsibility.
	if cfg.Site.Selectors.PostcodeInput != "" {
		t.Errorf("PostcodeInput = %q, want empty", cfg.Site.Selectors.PostcodeInput)
	}
}
