package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/datas-api/internal/logic/v1"
	"github.com/breeew/datas-api/internal/response"
	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/types"
	"github.com/breeew/datas-api/pkg/utils"
)

const (
	MESSAGE_DATA_CREATED = "Data created successfully"
	MESSAGE_DATA_UPDATED = "Data updated successfully"
	MESSAGE_DATA_DELETED = "Data deleted successfully"
)

type DataURI struct {
	ID int64 `uri:"id" binding:"gt=0"`
}

// DataRequest is the body of both create and update. Pointers tell an absent
// field apart from an empty string.
type DataRequest struct {
	EntryNumber *string `json:"entry_number" binding:"required"`
	Objective   *string `json:"objective" binding:"required"`
	Message     *string `json:"message" binding:"required"`
	Schedule    *string `json:"schedule" binding:"required"`
	DateTime    *string `json:"date_time" binding:"required"`
	Sender      *string `json:"sender" binding:"required"`
}

func (r DataRequest) Payload() types.DataPayload {
	return types.DataPayload{
		EntryNumber: *r.EntryNumber,
		Objective:   *r.Objective,
		Message:     *r.Message,
		Schedule:    *r.Schedule,
		DateTime:    *r.DateTime,
		Sender:      *r.Sender,
	}
}

func (s *HttpSrv) ListDatas(c *gin.Context) {
	list, err := v1.NewDataLogic(c, s.Core).ListDatas()
	if err != nil {
		response.APIError(c, errors.Trace("HttpSrv.ListDatas", err))
		return
	}
	response.APISuccess(c, list)
}

func (s *HttpSrv) GetData(c *gin.Context) {
	var uri DataURI
	if err := utils.BindURIWithGin(c, &uri); err != nil {
		response.APIError(c, err)
		return
	}

	data, err := v1.NewDataLogic(c, s.Core).GetData(uri.ID)
	if err != nil {
		response.APIError(c, errors.Trace("HttpSrv.GetData", err))
		return
	}
	response.APISuccess(c, data)
}

func (s *HttpSrv) CreateData(c *gin.Context) {
	var (
		err error
		req DataRequest
	)
	if err = utils.BindJSONWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	data, err := v1.NewDataLogic(c, s.Core).CreateData(req.Payload())
	if err != nil {
		response.APIError(c, errors.Trace("HttpSrv.CreateData", err))
		return
	}

	if s.Core.Cfg().API.ReturnCreated {
		response.APIMessage(c, MESSAGE_DATA_CREATED, data)
		return
	}
	response.APIMessage(c, MESSAGE_DATA_CREATED, nil)
}

func (s *HttpSrv) UpdateData(c *gin.Context) {
	var (
		err error
		uri DataURI
		req DataRequest
	)
	if err = utils.BindURIWithGin(c, &uri); err != nil {
		response.APIError(c, err)
		return
	}
	if err = utils.BindJSONWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewDataLogic(c, s.Core).UpdateData(uri.ID, req.Payload()); err != nil {
		response.APIError(c, errors.Trace("HttpSrv.UpdateData", err))
		return
	}
	response.APIMessage(c, MESSAGE_DATA_UPDATED, nil)
}

func (s *HttpSrv) DeleteData(c *gin.Context) {
	var uri DataURI
	if err := utils.BindURIWithGin(c, &uri); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewDataLogic(c, s.Core).DeleteData(uri.ID); err != nil {
		response.APIError(c, errors.Trace("HttpSrv.DeleteData", err))
		return
	}
	response.APIMessage(c, MESSAGE_DATA_DELETED, nil)
}
