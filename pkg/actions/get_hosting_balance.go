package actions

import (
	"context"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type BalanceProvider interface {
	GetBalanceMessage(ctx context.Context) (string, error)
}

type getHostingBalance struct {
	provider BalanceProvider
}

func NewGetHostingBalance(provider BalanceProvider) *getHostingBalance {
	return &getHostingBalance{provider: provider}
}

func (g *getHostingBalance) Name() string { return "get_hosting_balance" }

func (g *getHostingBalance) Description() string {
	return "Returns the hosting account balance"
}

func (g *getHostingBalance) Parameters() domain.Definition { return domain.Definition{} }

func (g *getHostingBalance) Execute(ctx context.Context, _ map[string]any) (string, error) {
	return g.provider.GetBalanceMessage(ctx)
}
