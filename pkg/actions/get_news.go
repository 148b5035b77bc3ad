package actions

import (
	"context"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type NewsProvider interface {
	LatestUploads(ctx context.Context) (string, error)
}

type getNews struct {
	provider NewsProvider
}

func NewGetNews(provider NewsProvider) *getNews {
	return &getNews{provider: provider}
}

func (g *getNews) Name() string { return "get_news" }

func (g *getNews) Description() string {
	return "Returns recent news material from the monitored channel for summarizing"
}

func (g *getNews) Parameters() domain.Definition { return domain.Definition{} }

func (g *getNews) Execute(ctx context.Context, _ map[string]any) (string, error) {
	return g.provider.LatestUploads(ctx)
}
