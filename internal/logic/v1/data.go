package v1

import (
	"context"
	"database/sql"
	goerrors "errors"
	"net/http"

	"github.com/breeew/datas-api/internal/core"
	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
	"github.com/breeew/datas-api/pkg/types"
)

const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

type DataLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewDataLogic(ctx context.Context, core *core.Core) *DataLogic {
	l := &DataLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *DataLogic) observe(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		if errors.Is(err, http.StatusNotFound) {
			result = "not_found"
		}
	}
	l.core.Metrics().DataOperations.WithLabelValues(operation, result).Inc()
}

func notFound(trace string) error {
	return errors.New(trace, i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
}

// ListDatas returns every row ordered by id; an empty table yields an empty, non-nil slice.
func (l *DataLogic) ListDatas() (list []types.Data, err error) {
	defer func() { l.observe(OperationList, err) }()

	list, err = l.core.Store().DataStore().List(l.ctx)
	if err != nil {
		return nil, errors.New("DataLogic.ListDatas.DataStore.List", i18n.ERROR_INTERNAL, err)
	}
	if list == nil {
		list = []types.Data{}
	}
	return list, nil
}

func (l *DataLogic) GetData(id int64) (data *types.Data, err error) {
	defer func() { l.observe(OperationGet, err) }()

	data, err = l.core.Store().DataStore().Get(l.ctx, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, notFound("DataLogic.GetData.DataStore.Get.nil")
	}
	if err != nil {
		return nil, errors.New("DataLogic.GetData.DataStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return data, nil
}

// CreateData inserts payload and returns the stored row with its assigned id.
func (l *DataLogic) CreateData(payload types.DataPayload) (data *types.Data, err error) {
	defer func() { l.observe(OperationCreate, err) }()

	id, err := l.core.Store().DataStore().Create(l.ctx, payload.ToData(0))
	if err != nil {
		return nil, errors.New("DataLogic.CreateData.DataStore.Create", i18n.ERROR_INTERNAL, err)
	}

	res := payload.ToData(id)
	return &res, nil
}

// UpdateData overwrites every field of row id with payload. The affected row
// count of the update decides NotFound, so a row deleted concurrently is
// reported as missing instead of silently ignored.
func (l *DataLogic) UpdateData(id int64, payload types.DataPayload) (err error) {
	defer func() { l.observe(OperationUpdate, err) }()

	affected, err := l.core.Store().DataStore().Update(l.ctx, id, payload.ToData(id))
	if err != nil {
		return errors.New("DataLogic.UpdateData.DataStore.Update", i18n.ERROR_INTERNAL, err)
	}
	if affected == 0 {
		return notFound("DataLogic.UpdateData.DataStore.Update.nil")
	}
	return nil
}

func (l *DataLogic) DeleteData(id int64) (err error) {
	defer func() { l.observe(OperationDelete, err) }()

	affected, err := l.core.Store().DataStore().Delete(l.ctx, id)
	if err != nil {
		return errors.New("DataLogic.DeleteData.DataStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	if affected == 0 {
		return notFound("DataLogic.DeleteData.DataStore.Delete.nil")
	}
	return nil
}
