package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dataMarket/business/dataset"
	"dataMarket/domain"
	"dataMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type DatasetService interface {
	GetAllDatasets(ctx context.Context, category string) ([]domain.Dataset, error)
	GetDatasetByID(ctx context.Context, id uint64) (domain.Dataset, error)
}

type DatasetHandler struct {
	datasetService DatasetService
	timeout        time.Duration
}

func NewDatasetHandler(datasetService DatasetService) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/datasets?category=battery
func (h *DatasetHandler) GetAllDatasets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	datasets, err := h.datasetService.GetAllDatasets(ctx, c.QueryParam("category"))
	if err != nil {
		logger.Error("Failed to find all datasets", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get datasets"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(datasets))
}

// GET /api/v1/datasets/:id
func (h *DatasetHandler) GetDatasetByID(c echo.Context) error {
	datasetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid dataset id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	d, err := h.datasetService.GetDatasetByID(ctx, datasetID)
	if err != nil {
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to find dataset", err, "dataset_id", datasetID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to get dataset"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(d))
}
