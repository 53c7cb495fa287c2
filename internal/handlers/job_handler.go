package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/middleware"
	"github.com/careerbridge/job-portal-api/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func jobIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("id", "invalid job id")
	}
	return uint(id), nil
}

// List is GET /jobs: public, paginated, active jobs only.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failBinding(c, err)
		return
	}

	jobs, total, err := h.Jobs.List(&q)
	if err != nil {
		fail(c, err, "Server error fetching jobs")
		return
	}
	respondPage(c, dtos.NewJobResponses(jobs), dtos.NewPageInfo(len(jobs), total, q.Page, q.Limit))
}

// Get is GET /jobs/:id: public job detail with employer summary.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := jobIDParam(c)
	if err != nil {
		fail(c, err, "")
		return
	}

	job, err := h.Jobs.GetByID(id)
	if err != nil {
		fail(c, err, "Server error fetching job")
		return
	}
	respondData(c, http.StatusOK, dtos.NewJobResponse(*job))
}

// Create is POST /jobs (employer only).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	job, err := h.Jobs.Create(middleware.CurrentUser(c).ID, &req)
	if err != nil {
		fail(c, err, "Server error creating job")
		return
	}
	respondMessage(c, http.StatusCreated, "Job created successfully", job)
}

// Update is PUT /jobs/:id (owning employer only).
func (h *JobHandler) Update(c *gin.Context) {
	id, err := jobIDParam(c)
	if err != nil {
		fail(c, err, "")
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	job, err := h.Jobs.Update(id, middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Server error updating job")
		return
	}
	respondMessage(c, http.StatusOK, "Job updated successfully", job)
}

// Delete is DELETE /jobs/:id (owning employer or admin); applications for
// the job go with it.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := jobIDParam(c)
	if err != nil {
		fail(c, err, "")
		return
	}

	if err := h.Jobs.Delete(id, middleware.CurrentUser(c)); err != nil {
		fail(c, err, "Server error deleting job")
		return
	}
	respondMessage(c, http.StatusOK, "Job deleted successfully", nil)
}

// MyJobs is GET /jobs/employer/my-jobs (employer only).
func (h *JobHandler) MyJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByEmployer(middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err, "Server error fetching jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(jobs), "data": jobs})
}
