package gdrive

import (
	"testing"
	"time"
)

func TestLatest(t *testing.T) {
	revisions := []Revision{
		{ID: "0B0h6K", Modified: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "0B0h6L", Modified: time.Date(2025, time.June, 17, 9, 30, 0, 0, time.UTC)},
		{ID: "0B0h6M", Modified: time.Date(2025, time.April, 2, 23, 59, 59, 0, time.UTC)},
	}

	latest, err := Latest(revisions)
	if err != nil {
		t.Fatalf("Unexpected error returned from Latest (%v)", err)
	}

	if latest.ID != "0B0h6L" {
		t.Errorf("Incorrect latest revision - expected:%v, got:%v", "0B0h6L", latest.ID)
	}
}

func TestLatestWithSingleRevision(t *testing.T) {
	revisions := []Revision{
		{ID: "0B0h6K", Modified: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)},
	}

	latest, err := Latest(revisions)
	if err != nil {
		t.Fatalf("Unexpected error returned from Latest (%v)", err)
	}

	if latest.ID != "0B0h6K" {
		t.Errorf("Incorrect latest revision - expected:%v, got:%v", "0B0h6K", latest.ID)
	}
}

func TestLatestWithNoRevisions(t *testing.T) {
	if _, err := Latest([]Revision{}); err == nil {
		t.Fatalf("Expected error return for empty revision history, got %v", err)
	}
}
