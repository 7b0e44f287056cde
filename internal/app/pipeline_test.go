package app

import (
	"fmt"
	"testing"
	"time"

	"BinDay/internal/extractor"
	"BinDay/internal/models"
	"BinDay/internal/normalizer"
	"BinDay/pkg/config"
)

// These tests chain the extractor and normalizer the way RunPipeline does,
// with fragments generated against the real clock so they hold on any day.

func testExtractor() *extractor.Extractor {
	cfg := config.Config{}
	cfg.ApplyDefaults()
	return extractor.New(cfg.Site.Selectors, cfg.Site.Markers)
}

func fragment(marker string, t time.Time) string {
	raw := fmt.Sprintf("%s %d %s", t.Weekday(), t.Day(), t.Month())
	return fmt.Sprintf(`
	<div class="rubbish_date_wrap">
		<div class="rubbish_date_container">
			<div class="rubbish_date_container_left %s">
				Your next collection day is
				<div class="rubbish_date_container_left_datetext">%s</div>
			</div>
		</div>
	</div>`, marker, raw)
}

func TestPipelineCollectionToday(t *testing.T) {
	now := time.Now()

	collection, serr := testExtractor().Extract(fragment("rubbish_collection_difs_black", now))
	if serr != nil {
		t.Fatalf("Extract failed: %v", serr)
	}

	out := normalizer.Normalize(collection)
	if out[models.Rubbish] != "Today" {
		t.Errorf("Rubbish = %q, want Today", out[models.Rubbish])
	}
}

func TestPipelineCollectionInFiveDays(t *testing.T) {
	target := time.Now().AddDate(0, 0, 5)

	collection, serr := testExtractor().Extract(fragment("rubbish_collection_difs_purple", target))
	if serr != nil {
		t.Fatalf("Extract failed: %v", serr)
	}

	out := normalizer.Normalize(collection)
	want := fmt.Sprintf("5 Days (%s %d%s)",
		target.Weekday().String()[:3], target.Day(), extractor.OrdinalSuffix(target.Day()))
	if out[models.Food] != want {
		t.Errorf("Food = %q, want %q", out[models.Food], want)
	}
}

func TestPipelineErrorShortCircuits(t *testing.T) {
	_, serr := testExtractor().Extract("<div></div>")
	if serr == nil {
		t.Fatal("expected an extraction error")
	}
	record := serr.Record()
	if len(record) != 1 || record["Error"] != "Invalid HTML" {
		t.Errorf(`record = %v, want {"Error": "Invalid HTML"}`, record)
	}
}
