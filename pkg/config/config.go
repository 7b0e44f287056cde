package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig identifies the council lookup form and the address being queried.
// AddressValue is the <option value> of the address dropdown, not the house
// number or a human-readable address.
type SiteConfig struct {
	URL          string `yaml:"url"`
	Postcode     string `yaml:"postcode"`
	AddressValue string `yaml:"address_value"`

	Selectors Selectors `yaml:"selectors"`
	Markers   Markers   `yaml:"markers"`
}

// Selectors are the CSS hooks for the form automation steps. The council owns
// this markup; when they redesign, this is the place to update.
type Selectors struct {
	PostcodeInput string `yaml:"postcode_input"`
	SearchButton  string `yaml:"search_button"`
	AddressSelect string `yaml:"address_select"`
	Results       string `yaml:"results"`
	Block         string `yaml:"block"`
	DateText      string `yaml:"date_text"`
}

// Markers map the marker class on each collection block to a waste category.
type Markers struct {
	Rubbish   string `yaml:"rubbish"`
	Recycling string `yaml:"recycling"`
	Food      string `yaml:"food"`
}

// ScraperConfig holds browser settings and the per-step timeouts (seconds).
type ScraperConfig struct {
	Headless        bool `yaml:"headless"`
	NavTimeout      int  `yaml:"nav_timeout"`
	DropdownTimeout int  `yaml:"dropdown_timeout"`
	ResultsTimeout  int  `yaml:"results_timeout"`
}

// Config is the complete structure for the config.yml file.
type Config struct {
	Site     SiteConfig    `yaml:"site"`
	Scraper  ScraperConfig `yaml:"scraper"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// Current site values. Kept as defaults so config.yml only has to carry the
// postcode and address.
var defaultSelectors = Selectors{
	PostcodeInput: "#FINDYOURBINDAYS3WEEKLY_ADDRESSLOOKUPPOSTCODE",
	SearchButton:  "#FINDYOURBINDAYS3WEEKLY_ADDRESSLOOKUPSEARCH",
	AddressSelect: "#FINDYOURBINDAYS3WEEKLY_ADDRESSLOOKUPADDRESS",
	Results:       "#FINDYOURBINDAYS3WEEKLY_RUBBISHRECYCLEFOODDATE",
	Block:         ".rubbish_date_wrap",
	DateText:      ".rubbish_date_container_left_datetext",
}

var defaultMarkers = Markers{
	Rubbish:   "rubbish_collection_difs_black",
	Recycling: "rubbish_collection_difs_green",
	Food:      "rubbish_collection_difs_purple",
}

// LoadConfig reads config.yml and fills in defaults for anything omitted.
func LoadConfig(filepath string) *Config {
	data, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Error unmarshalling config YAML: %v", err)
	}
	cfg.ApplyDefaults()
	return &cfg
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Site.Selectors == (Selectors{}) {
		c.Site.Selectors = defaultSelectors
	}
	if c.Site.Markers == (Markers{}) {
		c.Site.Markers = defaultMarkers
	}
	if c.Scraper.NavTimeout <= 0 {
		c.Scraper.NavTimeout = 60
	}
	if c.Scraper.DropdownTimeout <= 0 {
		c.Scraper.DropdownTimeout = 20
	}
	if c.Scraper.ResultsTimeout <= 0 {
		c.Scraper.ResultsTimeout = 20
	}
	if c.Database.Path == "" {
		c.Database.Path = "binday.db"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
}

// NavTimeoutDuration returns the navigation timeout as a time.Duration.
func (s ScraperConfig) NavTimeoutDuration() time.Duration {
	return time.Duration(s.NavTimeout) * time.Second
}

// DropdownTimeoutDuration returns the address-dropdown timeout.
func (s ScraperConfig) DropdownTimeoutDuration() time.Duration {
	return time.Duration(s.DropdownTimeout) * time.Second
}

// ResultsTimeoutDuration returns the results-container timeout.
func (s ScraperConfig) ResultsTimeoutDuration() time.Duration {
	return time.Duration(s.ResultsTimeout) * time.Second
}
