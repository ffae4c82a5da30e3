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

// HourlyRequest defines the structure for hourly count requests
type HourlyRequest struct {
	Date      string `json:"date"`
	Machine   string `json:"machine"`
	JobNumber string `json:"job_number"`
	OpNumber  string `json:"op_number"`
	Time      string `json:"time"`
	Quantity  int    `json:"quantity"`
}

// CreateHourly records an hourly count sample
func CreateHourly(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("hourly", "create")

	var req HourlyRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Time == "" || req.Machine == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time and machine are required"})
	}

	date, err := repository.ParseDate(req.Date)
	if err != nil {
		return respondRepoError(c, err, "invalid hourly date")
	}

	hourly := model.Hourly{
		Date:      date,
		Machine:   req.Machine,
		JobNumber: req.JobNumber,
		OpNumber:  req.OpNumber,
		Time:      req.Time,
		Quantity:  req.Quantity,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreateHourly(routeUserID(c), &hourly); err != nil {
		return respondRepoError(c, err, "failed to create hourly count")
	}

	log.Info("Hourly count recorded",
		zap.String("machine", hourly.Machine),
		zap.String("time", hourly.Time),
		zap.Int("quantity", hourly.Quantity))
	return c.JSON(http.StatusCreated, hourly)
}

// GetHourly returns one hourly count by row ID
func GetHourly(c echo.Context) error {
	prometheus.RecordOperation("hourly", "get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hourly id"})
	}

	hourly, err := repo.GetHourlyByID(routeUserID(c), uint(id))
	if err != nil {
		return respondRepoError(c, err, "failed to get hourly count")
	}
	return c.JSON(http.StatusOK, hourly)
}

// GetAnyHourly probes whether the user has recorded any hourly data
func GetAnyHourly(c echo.Context) error {
	prometheus.RecordOperation("hourly", "probe")

	hourly, err := repo.GetAnyHourly(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to probe hourly counts")
	}
	return c.JSON(http.StatusOK, hourly)
}

// GetHourlySetByDateAndMachine returns a machine's counts on one date
// in clock order
func GetHourlySetByDateAndMachine(c echo.Context) error {
	prometheus.RecordOperation("hourly", "list_by_machine")

	hourlies, err := repo.GetHourlySetByDateAndMachine(
		routeUserID(c), c.Param("date"), c.Param("machine"))
	if err != nil {
		return respondRepoError(c, err, "failed to list hourly counts")
	}
	return c.JSON(http.StatusOK, hourlies)
}

// GetHourlySetByDateMachineJobAndOp narrows a machine's counts on one
// date to a single job step
func GetHourlySetByDateMachineJobAndOp(c echo.Context) error {
	prometheus.RecordOperation("hourly", "list_by_job_op")

	hourlies, err := repo.GetHourlySetByDateMachineJobAndOp(
		routeUserID(c),
		c.Param("date"),
		c.Param("machine"),
		c.Param("jobNum"),
		c.Param("opNum"),
	)
	if err != nil {
		return respondRepoError(c, err, "failed to list hourly counts by job")
	}
	return c.JSON(http.StatusOK, hourlies)
}

// UpdateHourly applies an update to an existing hourly count
func UpdateHourly(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("hourly", "update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hourly id"})
	}

	var req HourlyRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	userID := routeUserID(c)
	hourly, err := repo.GetHourlyByID(userID, uint(id))
	if err != nil {
		return respondRepoError(c, err, "failed to get hourly count for update")
	}

	if req.Date != "" {
		date, err := repository.ParseDate(req.Date)
		if err != nil {
			return respondRepoError(c, err, "invalid hourly date")
		}
		hourly.Date = date
	}
	if req.Time != "" {
		hourly.Time = req.Time
	}
	hourly.Quantity = req.Quantity

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SaveHourly(userID, hourly); err != nil {
		return respondRepoError(c, err, "failed to save hourly count")
	}

	log.Info("Hourly count updated", zap.Uint("id", hourly.ID), zap.Int("quantity", hourly.Quantity))
	return c.JSON(http.StatusOK, hourly)
}

// DeleteHourly removes one hourly count by row ID
func DeleteHourly(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("hourly", "delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hourly id"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeleteHourly(routeUserID(c), uint(id)); err != nil {
		return respondRepoError(c, err, "failed to delete hourly count")
	}

	log.Info("Hourly count deleted", zap.Uint64("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "hourly count deleted"})
}
