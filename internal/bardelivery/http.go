// Package bardelivery manages delivery layer of bars.
package bardelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/barstore/pkg/errorspkg"
	"github.com/go-petr/barstore/pkg/web"
)

// Service provides service layer interface needed by bar delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bardelivery
type Service interface {
	Delete(ctx context.Context, id int64, name string) (int64, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// Handler facilitates bar delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bar handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

type data struct {
	RowsAffected int64 `json:"rows_affected"`
}

type deleteURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type deleteQuery struct {
	Name string `form:"name"`
}

// Delete handles http request to delete a bar by id and, optionally, name.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri deleteURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		badRequest(gctx, err)

		return
	}

	var query deleteQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		badRequest(gctx, err)

		return
	}

	rows, err := h.service.Delete(ctx, uri.ID, query.Name)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{RowsAffected: rows}})
}

type deleteManyRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,max=100,dive,min=1"`
}

// DeleteMany handles http request to delete bars with any of the given ids.
func (h *Handler) DeleteMany(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req deleteManyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		badRequest(gctx, err)

		return
	}

	rows, err := h.service.DeleteMany(ctx, req.IDs)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{RowsAffected: rows}})
}

func badRequest(gctx *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}
