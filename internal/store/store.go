package store

import (
	"context"

	"github.com/breeew/datas-api/pkg/types"
)

// DataStore is the persistence contract of the datas table.
type DataStore interface {
	// Create inserts data, ignoring data.DataID, and returns the assigned id.
	Create(ctx context.Context, data types.Data) (int64, error)
	// Get returns sql.ErrNoRows when no row matches id.
	Get(ctx context.Context, id int64) (*types.Data, error)
	List(ctx context.Context) ([]types.Data, error)
	// Update overwrites every text column of row id and returns the number of rows affected.
	Update(ctx context.Context, id int64, data types.Data) (int64, error)
	// Delete returns the number of rows affected.
	Delete(ctx context.Context, id int64) (int64, error)
	Total(ctx context.Context) (int64, error)
}
