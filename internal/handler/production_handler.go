package handler

import (
	"net/http"
	"strconv"
	"time"

	"tracking-service/internal/model"
	"tracking-service/internal/repository"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductionRequest defines the structure for production lot requests
type ProductionRequest struct {
	JobNumber string `json:"job_number"`
	OpNumber  string `json:"op_number"`
	Machine   string `json:"machine"`
	MachType  string `json:"mach_type"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
	Quantity  int    `json:"quantity"`
}

// CreateProduction records a production lot for an operation. A shift
// of "Found" marks a manual reconciliation entry.
func CreateProduction(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("production", "create")

	var req ProductionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Shift == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "shift is required"})
	}

	date, err := repository.ParseDate(req.Date)
	if err != nil {
		return respondRepoError(c, err, "invalid production date")
	}

	userID := routeUserID(c)

	// The parent operation must exist for the user
	if _, err := repo.GetOperation(userID, req.JobNumber, req.OpNumber); err != nil {
		return respondRepoError(c, err, "failed to resolve operation for production")
	}

	prod := model.Production{
		JobNumber: req.JobNumber,
		OpNumber:  req.OpNumber,
		Machine:   req.Machine,
		MachType:  req.MachType,
		Date:      date,
		Shift:     req.Shift,
		Quantity:  req.Quantity,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreateProduction(userID, &prod); err != nil {
		return respondRepoError(c, err, "failed to create production")
	}

	log.Info("Production recorded",
		zap.String("job_number", prod.JobNumber),
		zap.String("op_number", prod.OpNumber),
		zap.String("shift", prod.Shift),
		zap.Int("quantity", prod.Quantity))
	return c.JSON(http.StatusCreated, prod)
}

// GetProduction returns one production lot by row ID
func GetProduction(c echo.Context) error {
	prometheus.RecordOperation("production", "get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid production id"})
	}

	prod, err := repo.GetProductionByID(routeUserID(c), uint(id))
	if err != nil {
		return respondRepoError(c, err, "failed to get production")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetAnyProduction returns every production lot for the user
func GetAnyProduction(c echo.Context) error {
	prometheus.RecordOperation("production", "list")

	prod, err := repo.GetAnyProduction(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to list production")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionSet returns one page of production lots for a machine
// type, most recent date first
func GetProductionSet(c echo.Context) error {
	prometheus.RecordOperation("production", "list_by_type")

	page, err := repo.GetProductionSet(routeUserID(c), pagingParams(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list production set")
	}
	addPagination(c, page)
	return c.JSON(http.StatusOK, page.Items)
}

// GetProductionSetByJob returns production lots for one job
func GetProductionSetByJob(c echo.Context) error {
	prometheus.RecordOperation("production", "list_by_job")

	prod, err := repo.GetProductionSetByJob(routeUserID(c), c.Param("jobNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to list production by job")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionSetByOp returns production lots for one process step
func GetProductionSetByOp(c echo.Context) error {
	prometheus.RecordOperation("production", "list_by_op")

	prod, err := repo.GetProductionSetByOp(routeUserID(c), c.Param("jobNum"), c.Param("opNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to list production by op")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionSetByJobOpAndMachine returns every lot for one job step
// on one machine, grouped by shift
func GetProductionSetByJobOpAndMachine(c echo.Context) error {
	prometheus.RecordOperation("production", "list_by_machine")

	prod, err := repo.GetProductionSetByJobOpAndMachine(
		routeUserID(c), c.Param("jobNum"), c.Param("opNum"), c.Param("machine"))
	if err != nil {
		return respondRepoError(c, err, "failed to list production by machine")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionSetByDate returns every lot recorded on one date
func GetProductionSetByDate(c echo.Context) error {
	prometheus.RecordOperation("production", "list_by_date")

	prod, err := repo.GetProductionSetByDate(routeUserID(c), c.Param("date"))
	if err != nil {
		return respondRepoError(c, err, "failed to list production by date")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionShifts returns the routine shift lots for a drill-down
// key, excluding reconciliation rows
func GetProductionShifts(c echo.Context) error {
	prometheus.RecordOperation("production", "list_shifts")

	prod, err := repo.GetProductionShifts(
		routeUserID(c),
		c.QueryParam("date"),
		c.QueryParam("job"),
		c.QueryParam("op"),
		c.QueryParam("machine"),
	)
	if err != nil {
		return respondRepoError(c, err, "failed to list production shifts")
	}
	return c.JSON(http.StatusOK, prod)
}

// GetProductionFound returns only the reconciliation rows for a
// drill-down key
func GetProductionFound(c echo.Context) error {
	prometheus.RecordOperation("production", "list_found")

	prod, err := repo.GetProductionFound(
		routeUserID(c),
		c.QueryParam("date"),
		c.QueryParam("job"),
		c.QueryParam("op"),
		c.QueryParam("machine"),
	)
	if err != nil {
		return respondRepoError(c, err, "failed to list found production")
	}
	return c.JSON(http.StatusOK, prod)
}

// UpdateProduction applies an update to an existing production lot
func UpdateProduction(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("production", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid production id"})
	}

	var req ProductionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	userID := routeUserID(c)
	prod, err := repo.GetProductionByID(userID, uint(id))
	if err != nil {
		return respondRepoError(c, err, "failed to get production for update")
	}

	if req.Date != "" {
		date, err := repository.ParseDate(req.Date)
		if err != nil {
			return respondRepoError(c, err, "invalid production date")
		}
		prod.Date = date
	}
	if req.Shift != "" {
		prod.Shift = req.Shift
	}
	if req.Machine != "" {
		prod.Machine = req.Machine
	}
	prod.Quantity = req.Quantity

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SaveProduction(userID, prod); err != nil {
		return respondRepoError(c, err, "failed to save production")
	}

	log.Info("Production updated", zap.Uint("id", prod.ID), zap.Int("quantity", prod.Quantity))
	return c.JSON(http.StatusOK, prod)
}

// DeleteProduction removes one production lot by row ID
func DeleteProduction(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("production", "delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid production id"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeleteProduction(routeUserID(c), uint(id)); err != nil {
		return respondRepoError(c, err, "failed to delete production")
	}

	log.Info("Production deleted", zap.Uint64("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "production deleted"})
}
