package handler

import (
	"net/http"
	"time"

	"tracking-service/internal/model"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OperationRequest defines the structure for operation creation
// requests
type OperationRequest struct {
	JobNumber string `json:"job_number"`
	OpNumber  string `json:"op_number"`
	Machine   string `json:"machine"`
}

// CreateOperation adds a process step to a job
func CreateOperation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("operation", "create")

	var req OperationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.JobNumber == "" || req.OpNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "job number and op number are required"})
	}

	userID := routeUserID(c)

	// The parent job must exist for the user
	if _, err := repo.GetJob(userID, req.JobNumber); err != nil {
		return respondRepoError(c, err, "failed to resolve job for operation")
	}

	op := model.Operation{
		JobNumber: req.JobNumber,
		OpNumber:  req.OpNumber,
		Machine:   req.Machine,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreateOperation(userID, &op); err != nil {
		return respondRepoError(c, err, "failed to create operation")
	}

	log.Info("Operation created",
		zap.String("job_number", op.JobNumber),
		zap.String("op_number", op.OpNumber))
	return c.JSON(http.StatusCreated, op)
}

// GetOperation returns one process step of a job
func GetOperation(c echo.Context) error {
	prometheus.RecordOperation("operation", "get")

	op, err := repo.GetOperation(routeUserID(c), c.Param("jobNum"), c.Param("opNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to get operation")
	}
	return c.JSON(http.StatusOK, op)
}

// GetOperationsByJob returns every process step of a job
func GetOperationsByJob(c echo.Context) error {
	prometheus.RecordOperation("operation", "list_by_job")

	ops, err := repo.GetOperationsByJob(routeUserID(c), c.Param("jobNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to list operations")
	}
	return c.JSON(http.StatusOK, ops)
}

// GetOperationsByMachine returns the steps of a job assigned to one
// machine
func GetOperationsByMachine(c echo.Context) error {
	prometheus.RecordOperation("operation", "list_by_machine")

	ops, err := repo.GetOperationsByMachine(routeUserID(c), c.Param("jobNum"), c.Param("machine"))
	if err != nil {
		return respondRepoError(c, err, "failed to list operations by machine")
	}
	return c.JSON(http.StatusOK, ops)
}

// DeleteOperation removes one process step of a job
func DeleteOperation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("operation", "delete")

	jobNum, opNum := c.Param("jobNum"), c.Param("opNum")
	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeleteOperation(routeUserID(c), jobNum, opNum); err != nil {
		return respondRepoError(c, err, "failed to delete operation")
	}

	log.Info("Operation deleted",
		zap.String("job_number", jobNum),
		zap.String("op_number", opNum))
	return c.JSON(http.StatusOK, echo.Map{"message": "operation deleted"})
}
