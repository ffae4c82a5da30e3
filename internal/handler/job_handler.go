package handler

import (
	"net/http"
	"time"

	"tracking-service/internal/model"
	"tracking-service/internal/repository"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// JobRequest defines the structure for job creation/update requests
type JobRequest struct {
	JobNumber         string  `json:"job_number"`
	PartNumber        string  `json:"part_number"`
	MachType          string  `json:"mach_type"`
	OrderQuantity     int     `json:"order_quantity"`
	PossibleQuantity  int     `json:"possible_quantity"`
	RemainingQuantity int     `json:"remaining_quantity"`
	Weight            float64 `json:"weight"`
	DeliveryDate      string  `json:"delivery_date"`
	HeatLot           string  `json:"heat_lot"`
	Material          string  `json:"material"`
}

// CreateJob creates a new job for the user. The referenced part must
// already exist for the user.
func CreateJob(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("job", "create")

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	deliveryDate, err := repository.ParseDate(req.DeliveryDate)
	if err != nil {
		return respondRepoError(c, err, "invalid delivery date")
	}

	job := model.Job{
		JobNumber:         req.JobNumber,
		PartNumber:        req.PartNumber,
		MachType:          req.MachType,
		OrderQuantity:     req.OrderQuantity,
		PossibleQuantity:  req.PossibleQuantity,
		RemainingQuantity: req.RemainingQuantity,
		Weight:            req.Weight,
		DeliveryDate:      deliveryDate,
		HeatLot:           req.HeatLot,
		Material:          req.Material,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := repo.CreateJob(routeUserID(c), &job); err != nil {
		return respondRepoError(c, err, "failed to create job")
	}

	log.Info("Job created",
		zap.String("job_number", job.JobNumber),
		zap.String("part_number", job.PartNumber))
	return c.JSON(http.StatusCreated, job)
}

// GetJob returns one job by job number
func GetJob(c echo.Context) error {
	prometheus.RecordOperation("job", "get")

	job, err := repo.GetJob(routeUserID(c), c.Param("jobNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to get job")
	}
	return c.JSON(http.StatusOK, job)
}

// GetAnyJobs returns every active job for the user
func GetAnyJobs(c echo.Context) error {
	prometheus.RecordOperation("job", "list")

	jobs, err := repo.GetAnyJobs(routeUserID(c))
	if err != nil {
		return respondRepoError(c, err, "failed to list jobs")
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJobs returns one page of active jobs of a machine type, newest
// job number first
func GetJobs(c echo.Context) error {
	prometheus.RecordOperation("job", "list_by_type")

	page, err := repo.GetJobs(routeUserID(c), pagingParams(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list jobs")
	}
	addPagination(c, page)
	return c.JSON(http.StatusOK, page.Items)
}

// GetJobsByDate returns one page of active jobs of a machine type,
// earliest delivery first
func GetJobsByDate(c echo.Context) error {
	prometheus.RecordOperation("job", "list_by_date")

	page, err := repo.GetJobsByDate(routeUserID(c), pagingParams(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list jobs by date")
	}
	addPagination(c, page)
	return c.JSON(http.StatusOK, page.Items)
}

// GetAllJobsByType returns one page of jobs of a machine type
// regardless of status
func GetAllJobsByType(c echo.Context) error {
	prometheus.RecordOperation("job", "list_all_by_type")

	page, err := repo.GetAllJobsByType(routeUserID(c), pagingParams(c), c.Param("machType"))
	if err != nil {
		return respondRepoError(c, err, "failed to list jobs by type")
	}
	addPagination(c, page)
	return c.JSON(http.StatusOK, page.Items)
}

// GetJobsByPart returns the jobs referencing one part number
func GetJobsByPart(c echo.Context) error {
	prometheus.RecordOperation("job", "list_by_part")

	jobs, err := repo.GetJobsByPart(routeUserID(c), c.Param("partNumber"))
	if err != nil {
		return respondRepoError(c, err, "failed to list jobs by part")
	}
	return c.JSON(http.StatusOK, jobs)
}

// UpdateJob applies a full update to an existing job
func UpdateJob(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("job", "update")

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	userID := routeUserID(c)
	job, err := repo.GetJob(userID, c.Param("jobNum"))
	if err != nil {
		return respondRepoError(c, err, "failed to get job for update")
	}

	if req.DeliveryDate != "" {
		deliveryDate, err := repository.ParseDate(req.DeliveryDate)
		if err != nil {
			return respondRepoError(c, err, "invalid delivery date")
		}
		job.DeliveryDate = deliveryDate
	}
	if req.PartNumber != "" && req.PartNumber != job.PartNumber {
		// Re-pointing a job at another part requires the part to exist
		part, err := repo.GetPart(userID, req.PartNumber)
		if err != nil {
			return respondRepoError(c, err, "failed to resolve part for update")
		}
		job.PartNumber = part.PartNumber
	}
	if req.MachType != "" {
		job.MachType = req.MachType
	}
	job.OrderQuantity = req.OrderQuantity
	job.PossibleQuantity = req.PossibleQuantity
	job.RemainingQuantity = req.RemainingQuantity
	job.Weight = req.Weight
	if req.HeatLot != "" {
		job.HeatLot = req.HeatLot
	}
	if req.Material != "" {
		job.Material = req.Material
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SaveJob(userID, job); err != nil {
		return respondRepoError(c, err, "failed to save job")
	}

	log.Info("Job updated", zap.String("job_number", job.JobNumber))
	return c.JSON(http.StatusOK, job)
}

// UpdateJobRemaining sets the remaining quantity on a job
func UpdateJobRemaining(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("job", "update_remaining")

	var req struct {
		RemainingQuantity int `json:"remaining_quantity"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	jobNum := c.Param("jobNum")
	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.UpdateJobRemaining(routeUserID(c), jobNum, req.RemainingQuantity); err != nil {
		return respondRepoError(c, err, "failed to update remaining quantity")
	}

	log.Info("Job remaining quantity updated",
		zap.String("job_number", jobNum),
		zap.Int("remaining", req.RemainingQuantity))
	return c.JSON(http.StatusOK, echo.Map{"job_number": jobNum, "remaining_quantity": req.RemainingQuantity})
}

// UpdateActiveJob flips the active status on a job
func UpdateActiveJob(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("job", "update_active")

	var req struct {
		Active string `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Active == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "active status is required"})
	}

	jobNum := c.Param("jobNum")
	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := repo.SetJobActive(routeUserID(c), jobNum, req.Active); err != nil {
		return respondRepoError(c, err, "failed to update job status")
	}

	log.Info("Job status updated", zap.String("job_number", jobNum), zap.String("active", req.Active))
	return c.JSON(http.StatusOK, echo.Map{"job_number": jobNum, "active": req.Active})
}

// DeleteJob removes a job along with its operations, production lots
// and hourly counts
func DeleteJob(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("job", "delete")

	jobNum := c.Param("jobNum")
	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := repo.DeleteJob(routeUserID(c), jobNum); err != nil {
		return respondRepoError(c, err, "failed to delete job")
	}

	log.Info("Job deleted with dependent records", zap.String("job_number", jobNum))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Job# " + jobNum + " was deleted, along with related production lots and hourly counts",
	})
}
