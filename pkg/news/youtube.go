package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

const (
	cacheTTL             = time.Hour
	maxVideos            = 5
	maxDescriptionLength = 500
)

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
}

type cacheEntry struct {
	ChannelID string    `json:"channel_id"`
	FetchedAt time.Time `json:"fetched_at"`
	Videos    []Video   `json:"videos"`
}

// monitor fetches the latest uploads of a single channel, caching results on
// disk to stay inside the API quota.
type monitor struct {
	svc       *youtube.Service
	channelID string
	cachePath string
}

func NewMonitor(ctx context.Context, apiKey, channelID, cachePath string) (*monitor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &monitor{
		svc:       svc,
		channelID: channelID,
		cachePath: cachePath,
	}, nil
}

func (m *monitor) LatestUploads(ctx context.Context) (string, error) {
	if videos, ok := readCache(m.cachePath, m.channelID, cacheTTL); ok {
		return formatVideos(videos), nil
	}

	videos, err := m.fetchLatestVideos(ctx)
	if err != nil {
		return "", err
	}

	if err := writeCache(m.cachePath, cacheEntry{
		ChannelID: m.channelID,
		FetchedAt: time.Now(),
		Videos:    videos,
	}); err != nil {
		slog.WarnContext(ctx, "writing news cache", logger.Err(err))
	}

	return formatVideos(videos), nil
}

func (m *monitor) fetchLatestVideos(ctx context.Context) ([]Video, error) {
	channels, err := m.svc.Channels.List([]string{"contentDetails"}).
		Id(m.channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching channel: %w", err)
	}
	if len(channels.Items) == 0 {
		return nil, fmt.Errorf("channel not found: %s", m.channelID)
	}

	uploadsPlaylistID := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads

	items, err := m.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(uploadsPlaylistID).
		MaxResults(maxVideos).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching uploads playlist: %w", err)
	}

	videos := make([]Video, 0, len(items.Items))
	for _, item := range items.Items {
		videos = append(videos, Video{
			ID:          item.Snippet.ResourceId.VideoId,
			Title:       item.Snippet.Title,
			Description: truncateDescription(item.Snippet.Description),
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// truncateDescription cuts on a rune boundary so multi-byte characters are
// never split.
func truncateDescription(s string) string {
	if len(s) <= maxDescriptionLength {
		return s
	}
	cut := maxDescriptionLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func readCache(path, channelID string, ttl time.Duration) ([]Video, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.ChannelID != channelID || time.Since(entry.FetchedAt) > ttl {
		return nil, false
	}
	return entry.Videos, true
}

func writeCache(path string, entry cacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func formatVideos(videos []Video) string {
	if len(videos) == 0 {
		return "No recent uploads."
	}

	lines := make([]string, 0, len(videos))
	for _, v := range videos {
		lines = append(lines, fmt.Sprintf("%s (published %s): %s", v.Title, v.PublishedAt, v.Description))
	}
	return strings.Join(lines, "\n")
}
