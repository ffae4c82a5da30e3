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

// MachineRequest defines the structure for machine creation/update
// requests
type MachineRequest struct {
	Machine    string `json:"machine"`
	MachType   string `json:"mach_type"`
	CurrentJob string `json:"current_job"`
}

// CreateMachine registers a new machine for the user
func CreateMachine(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("machine", "create")

	var req MachineRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Machine == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "machine name is required"})
	}

	machine := model.Machine{
		Machine:    req.Machine,
		MachType:   req.MachType,
		CurrentJob: req.CurrentJob,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreateMachine(routeUserID(c), &machine); err != nil {
		return respondRepoError(c, err, "failed to create machine")
	}

	log.Info("Machine created", zap.String("machine", machine.Machine))
	return c.JSON(http.StatusCreated, machine)
}

// GetMachine returns one machine by name
func GetMachine(c echo.Context) error {
	prometheus.RecordOperation("machine", "get")

	machine, err := repo.GetMachine(routeUserID(c), c.Param("machine"))
	if err != nil {
		return respondRepoError(c, err, "failed to get machine")
	}
	return c.JSON(http.StatusOK, machine)
}

// GetAllMachines returns every machine for the user
func GetAllMachines(c echo.Context) error {
	prometheus.RecordOperation("machine", "list")

	machines, err := repo.GetAllMachines(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to list machines")
	}
	return c.JSON(http.StatusOK, machines)
}

// GetMachinesByType returns machines of one machine type
func GetMachinesByType(c echo.Context) error {
	prometheus.RecordOperation("machine", "list_by_type")

	machines, err := repo.GetMachinesByType(routeUserID(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list machines by type")
	}
	return c.JSON(http.StatusOK, machines)
}

// GetMachinesByJob returns machines ordered by their current job,
// highest first
func GetMachinesByJob(c echo.Context) error {
	prometheus.RecordOperation("machine", "list_by_job")

	machines, err := repo.GetMachinesByJob(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to list machines by job")
	}
	return c.JSON(http.StatusOK, machines)
}

// UpdateMachine applies an update to an existing machine, including
// the current-job back-reference
func UpdateMachine(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("machine", "update")

	var req MachineRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	userID := routeUserID(c)
	machine, err := repo.GetMachine(userID, c.Param("machine"))
	if err != nil {
		return respondRepoError(c, err, "failed to get machine for update")
	}

	if req.MachType != "" {
		machine.MachType = req.MachType
	}
	// CurrentJob may legitimately be cleared, so it is always applied
	machine.CurrentJob = req.CurrentJob

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SaveMachine(userID, machine); err != nil {
		return respondRepoError(c, err, "failed to save machine")
	}

	log.Info("Machine updated",
		zap.String("machine", machine.Machine),
		zap.String("current_job", machine.CurrentJob))
	return c.JSON(http.StatusOK, machine)
}

// DeleteMachine removes a machine
func DeleteMachine(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("machine", "delete")

	name := c.Param("machine")
	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeleteMachine(routeUserID(c), name); err != nil {
		return respondRepoError(c, err, "failed to delete machine")
	}

	log.Info("Machine deleted", zap.String("machine", name))
	return c.JSON(http.StatusOK, echo.Map{"message": "machine deleted"})
}
