package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/breeew/datas-api/pkg/register"
	"github.com/breeew/datas-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.DataStore = NewDataStore(provider)
	})
}

// DataStore handles the datas table.
type DataStore struct {
	CommonFields
}

func NewDataStore(provider SqlProviderAchieve) *DataStore {
	repo := &DataStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DATAS)
	repo.SetAllColumns("data_id", "entry_number", "objective", "message", "schedule", "date_time", "sender")
	return repo
}

func (s *DataStore) Create(ctx context.Context, data types.Data) (int64, error) {
	query := s.Builder().Insert(s.GetTable()).
		Columns("entry_number", "objective", "message", "schedule", "date_time", "sender").
		Values(data.EntryNumber, data.Objective, data.Message, data.Schedule, data.DateTime, data.Sender).
		Suffix("RETURNING data_id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var id int64
	if err = s.GetMaster().GetContext(ctx, &id, queryString, args...); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DataStore) Get(ctx context.Context, id int64) (*types.Data, error) {
	query := s.Builder().Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"data_id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Data
	if err = s.GetReplica().GetContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *DataStore) List(ctx context.Context) ([]types.Data, error) {
	query := s.Builder().Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("data_id ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Data
	if err = s.GetReplica().SelectContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DataStore) Update(ctx context.Context, id int64, data types.Data) (int64, error) {
	query := s.Builder().Update(s.GetTable()).
		Set("entry_number", data.EntryNumber).
		Set("objective", data.Objective).
		Set("message", data.Message).
		Set("schedule", data.Schedule).
		Set("date_time", data.DateTime).
		Set("sender", data.Sender).
		Where(sq.Eq{"data_id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	result, err := s.GetMaster().ExecContext(ctx, queryString, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *DataStore) Delete(ctx context.Context, id int64) (int64, error) {
	query := s.Builder().Delete(s.GetTable()).Where(sq.Eq{"data_id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	result, err := s.GetMaster().ExecContext(ctx, queryString, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *DataStore) Total(ctx context.Context) (int64, error) {
	query := s.Builder().Select("COUNT(*)").From(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var res int64
	if err = s.GetReplica().GetContext(ctx, &res, queryString, args...); err != nil {
		return 0, err
	}
	return res, nil
}
