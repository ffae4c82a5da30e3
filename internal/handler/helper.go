package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tracking-service/internal/repository"
	"tracking-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var repo *repository.Repository

// Init wires the handler package to the query layer. Called once from
// main before routes are registered.
func Init(r *repository.Repository) {
	repo = r
}

// routeUserID returns the :userId route parameter. The tenant guard
// middleware has already verified it matches the authenticated user.
func routeUserID(c echo.Context) uint {
	id, _ := strconv.ParseUint(c.Param("userId"), 10, 32)
	return uint(id)
}

// pagingParams reads pageNumber/pageSize query parameters. Values
// below 1 are clamped by the repository.
func pagingParams(c echo.Context) repository.PagingParams {
	pageNumber, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return repository.PagingParams{PageNumber: pageNumber, PageSize: pageSize}
}

// paginationHeader mirrors the page metadata callers need to render
// paged views.
type paginationHeader struct {
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
}

// addPagination writes the page metadata to the Pagination response
// header and exposes it for browser clients.
func addPagination[T any](c echo.Context, page *repository.PagedList[T]) {
	header := paginationHeader{
		CurrentPage:  page.CurrentPage,
		ItemsPerPage: page.PageSize,
		TotalItems:   page.TotalCount,
		TotalPages:   page.TotalPages,
	}
	value, err := json.Marshal(header)
	if err != nil {
		logger.FromContext(c).Error("Failed to marshal pagination header", zap.Error(err))
		return
	}
	c.Response().Header().Set("Pagination", string(value))
	c.Response().Header().Set("Access-Control-Expose-Headers", "Pagination")
}

// respondRepoError maps query-layer errors onto HTTP statuses:
// ErrNotFound to 404, ErrInvalidDate to 400, anything else is a
// storage failure reported as 500.
func respondRepoError(c echo.Context, err error, message string) error {
	log := logger.FromContext(c)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(message, zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidDate):
		log.Warn(message, zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		log.Error(message, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": message})
	}
}
