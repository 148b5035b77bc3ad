package news

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "youtube_cache.json")
	entry := cacheEntry{
		ChannelID: "UC123",
		FetchedAt: time.Now(),
		Videos:    []Video{{ID: "v1", Title: "Latest episode"}},
	}

	if err := writeCache(path, entry); err != nil {
		t.Fatalf("writing cache: %v", err)
	}

	videos, ok := readCache(path, "UC123", time.Hour)
	if !ok {
		t.Fatal("expected fresh cache hit")
	}
	if len(videos) != 1 || videos[0].Title != "Latest episode" {
		t.Errorf("unexpected cached videos: %+v", videos)
	}
}

func TestCacheMisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "youtube_cache.json")

	if _, ok := readCache(path, "UC123", time.Hour); ok {
		t.Error("expected miss for absent cache file")
	}

	stale := cacheEntry{
		ChannelID: "UC123",
		FetchedAt: time.Now().Add(-2 * time.Hour),
		Videos:    []Video{{ID: "v1"}},
	}
	if err := writeCache(path, stale); err != nil {
		t.Fatalf("writing cache: %v", err)
	}
	if _, ok := readCache(path, "UC123", time.Hour); ok {
		t.Error("expected miss for stale cache")
	}
	if _, ok := readCache(path, "UC999", 3*time.Hour); ok {
		t.Error("expected miss for different channel")
	}
}

func TestTruncateDescription(t *testing.T) {
	short := "short description"
	if got := truncateDescription(short); got != short {
		t.Errorf("short input must pass through, got %q", got)
	}

	// Place a multi-byte rune across the cut point.
	long := strings.Repeat("a", maxDescriptionLength-1) + "щось українською"
	got := truncateDescription(long)
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if len(got) > maxDescriptionLength+len("…") {
		t.Errorf("truncated description too long: %d bytes", len(got))
	}
}

func TestFormatVideos(t *testing.T) {
	if got := formatVideos(nil); got != "No recent uploads." {
		t.Errorf("empty list: got %q", got)
	}

	got := formatVideos([]Video{
		{Title: "One", PublishedAt: "2025-01-01T00:00:00Z", Description: "first"},
		{Title: "Two", PublishedAt: "2025-01-02T00:00:00Z", Description: "second"},
	})
	if !strings.Contains(got, "One (published 2025-01-01T00:00:00Z): first") {
		t.Errorf("unexpected formatting: %q", got)
	}
	if len(strings.Split(got, "\n")) != 2 {
		t.Errorf("expected one line per video, got %q", got)
	}
}
