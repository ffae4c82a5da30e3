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

// PartRequest defines the structure for part creation/update requests
type PartRequest struct {
	PartNumber  string `json:"part_number"`
	MachType    string `json:"mach_type"`
	Active      string `json:"active"`
	Material    string `json:"material"`
	Description string `json:"description"`
}

// CreatePart creates a new catalog part
func CreatePart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("part", "create")

	var req PartRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.PartNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "part number is required"})
	}

	active := req.Active
	if active == "" {
		active = model.StatusActive
	}
	part := model.Part{
		PartNumber:  req.PartNumber,
		MachType:    req.MachType,
		Active:      active,
		Material:    req.Material,
		Description: req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreatePart(routeUserID(c), &part); err != nil {
		return respondRepoError(c, err, "failed to create part")
	}

	log.Info("Part created", zap.String("part_number", part.PartNumber))
	return c.JSON(http.StatusCreated, part)
}

// GetPart returns one part by part number
func GetPart(c echo.Context) error {
	prometheus.RecordOperation("part", "get")

	part, err := repo.GetPart(routeUserID(c), c.Param("partNumber"))
	if err != nil {
		return respondRepoError(c, err, "failed to get part")
	}
	return c.JSON(http.StatusOK, part)
}

// SearchParts returns the parts whose number contains the fragment
func SearchParts(c echo.Context) error {
	prometheus.RecordOperation("part", "search")

	parts, err := repo.GetPartsByNumber(routeUserID(c), c.Param("fragment"))
	if err != nil {
		return respondRepoError(c, err, "failed to search parts")
	}
	return c.JSON(http.StatusOK, parts)
}

// GetAnyParts returns every part for the user
func GetAnyParts(c echo.Context) error {
	prometheus.RecordOperation("part", "list")

	parts, err := repo.GetAnyParts(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to list parts")
	}
	return c.JSON(http.StatusOK, parts)
}

// GetActiveParts returns active parts of a machine type
func GetActiveParts(c echo.Context) error {
	prometheus.RecordOperation("part", "list_active")

	parts, err := repo.GetActiveParts(routeUserID(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list active parts")
	}
	return c.JSON(http.StatusOK, parts)
}

// GetAllParts returns parts of a machine type regardless of status
func GetAllParts(c echo.Context) error {
	prometheus.RecordOperation("part", "list_all")

	parts, err := repo.GetAllParts(routeUserID(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list parts by type")
	}
	return c.JSON(http.StatusOK, parts)
}

// GetPartByJob resolves the part referenced by a job
func GetPartByJob(c echo.Context) error {
	prometheus.RecordOperation("part", "get_by_job")

	part, err := repo.GetPartByJob(routeUserID(c), c.Param("jobNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to get part by job")
	}
	return c.JSON(http.StatusOK, part)
}

// UpdatePart applies an update to an existing part
func UpdatePart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("part", "update")

	var req PartRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	userID := routeUserID(c)
	part, err := repo.GetPart(userID, c.Param("partNumber"))
	if err != nil {
		return respondRepoError(c, err, "failed to get part for update")
	}

	if req.MachType != "" {
		part.MachType = req.MachType
	}
	if req.Active != "" {
		part.Active = req.Active
	}
	if req.Material != "" {
		part.Material = req.Material
	}
	if req.Description != "" {
		part.Description = req.Description
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SavePart(userID, part); err != nil {
		return respondRepoError(c, err, "failed to save part")
	}

	log.Info("Part updated", zap.String("part_number", part.PartNumber))
	return c.JSON(http.StatusOK, part)
}

// DeletePart removes a part from the catalog
func DeletePart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("part", "delete")

	partNumber := c.Param("partNumber")
	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeletePart(routeUserID(c), partNumber); err != nil {
		return respondRepoError(c, err, "failed to delete part")
	}

	log.Info("Part deleted", zap.String("part_number", partNumber))
	return c.JSON(http.StatusOK, echo.Map{"message": "part deleted"})
}
