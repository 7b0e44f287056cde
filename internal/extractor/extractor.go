// Package extractor turns the council's raw results HTML into a Collection
// of canonical date tokens. It does not scrape and it does not prettify;
// it translates one brittle markup contract into structured data.
package extractor

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"BinDay/internal/models"
	"BinDay/pkg/config"
	"BinDay/utils"
)

// rawDatePattern matches the site's free-text date phrase, e.g.
// "Tuesday 6 January". Anything else passes through unformatted.
var rawDatePattern = regexp.MustCompile(
	`^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+(\d{1,2})\s+(\w+)$`,
)

// previewLimit caps how much of a failing fragment gets logged.
const previewLimit = 2000

// Extractor holds the markup grammar: the block/date selectors and the
// marker-class-to-category mapping. Version 1 of the contract is the site as
// of the 3-weekly collection rollout.
type Extractor struct {
	Selectors config.Selectors
	markers   map[string]models.Category
}

// New builds an Extractor from the configured selectors and markers.
func New(sel config.Selectors, markers config.Markers) *Extractor {
	return &Extractor{
		Selectors: sel,
		markers: map[string]models.Category{
			markers.Rubbish:   models.Rubbish,
			markers.Recycling: models.Recycling,
			markers.Food:      models.Food,
		},
	}
}

// Extract parses the raw fragment into a Collection of canonical date
// tokens. Zero blocks reports Invalid HTML; blocks without any recognized
// marker report JSON Mapping; anything unexpected reports Unknown. Blocks
// with an unrecognized marker are skipped, and categories the site did not
// report are simply absent.
func (e *Extractor) Extract(fragment string) (c models.Collection, serr *models.StageError) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Extraction panicked: %v", r)
			c = nil
			serr = &models.StageError{Code: models.CodeUnknown}
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, &models.StageError{Code: models.CodeUnknown, Cause: err}
	}

	blocks := doc.Find(e.Selectors.Block)
	if blocks.Length() == 0 {
		e.dumpFragment("no collection blocks found", fragment)
		return nil, &models.StageError{
			Code:  models.CodeInvalidHTML,
			Cause: fmt.Errorf("no blocks matched %q", e.Selectors.Block),
		}
	}

	result := models.Collection{}
	blocks.Each(func(i int, block *goquery.Selection) {
		dateEl := block.Find(e.Selectors.DateText)
		if dateEl.Length() == 0 {
			return
		}
		category, ok := e.categoryOf(block)
		if !ok {
			return
		}
		raw := strings.TrimSpace(dateEl.First().Text())
		result[category] = FormatCollectionDate(raw)
	})

	if len(result) == 0 {
		e.dumpFragment("blocks found, but no marker matched", fragment)
		return nil, &models.StageError{
			Code:  models.CodeJSONMapping,
			Cause: fmt.Errorf("%d blocks carried no known category marker", blocks.Length()),
		}
	}
	return result, nil
}

// categoryOf inspects the class attributes inside a block for one of the
// known marker strings.
func (e *Extractor) categoryOf(block *goquery.Selection) (models.Category, bool) {
	var found models.Category
	var ok bool
	block.Find("[class]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		for marker, category := range e.markers {
			if strings.Contains(class, marker) {
				found, ok = category, true
				return false
			}
		}
		return true
	})
	return found, ok
}

// dumpFragment logs a text-only preview of the fragment so a site redesign
// is diagnosable from the nightly log.
func (e *Extractor) dumpFragment(reason, fragment string) {
	preview := utils.InnerText(fragment)
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	log.Printf("Extraction failed (%s). Fragment text: %s", reason, preview)
}

// FormatCollectionDate rewrites the site's raw date phrase into the
// canonical token consumed by the normalizer:
//
//	"Tuesday 6 January" -> "Tuesday, 6th JAN"
//
// Phrases that do not match the grammar are returned unchanged.
func FormatCollectionDate(raw string) string {
	m := rawDatePattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	weekday, dayStr, month := m[1], m[2], m[3]
	if len(month) < 3 {
		return raw
	}

	day := 0
	for _, r := range dayStr {
		day = day*10 + int(r-'0')
	}

	return fmt.Sprintf("%s, %d%s %s", weekday, day, OrdinalSuffix(day), strings.ToUpper(month[:3]))
}

// OrdinalSuffix returns the English ordinal suffix for a day of the month.
func OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
