package sqlstore

import (
	"context"

	"github.com/breeew/datas-api/internal/store"
	"github.com/breeew/datas-api/pkg/register"
	"github.com/breeew/datas-api/pkg/sqlstore"
)

type RegisterKey struct{}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.DataStore
}

// Setup opens the pools and builds every registered table store on top of them.
func Setup(ctx context.Context, m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) (*Provider, error) {
	sp, err := sqlstore.SetupProvider(ctx, m, s...)
	if err != nil {
		return nil, err
	}

	provider := &Provider{
		SqlProvider: sp,
		stores:      &Stores{},
	}
	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}
	return provider, nil
}

func (p *Provider) DataStore() store.DataStore {
	return p.stores.DataStore
}
