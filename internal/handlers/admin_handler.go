package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/services"
)

type AdminHandler struct {
	Users *services.UserService
	Jobs  *services.JobService
	Stats *services.StatsService
}

func NewAdminHandler(users *services.UserService, jobs *services.JobService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{Users: users, Jobs: jobs, Stats: stats}
}

// ListUsers is GET /admin/users with optional role filter.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failBinding(c, err)
		return
	}
	q.Normalize()

	users, total, err := h.Users.ListUsers(c.Query("role"), q.Page, q.Limit)
	if err != nil {
		fail(c, err, "Server error fetching users")
		return
	}
	respondPage(c, users, dtos.NewPageInfo(len(users), total, q.Page, q.Limit))
}

// GetUser is GET /admin/users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("id", "invalid user id"), "")
		return
	}

	user, err := h.Users.GetByID(uint(id))
	if err != nil {
		fail(c, err, "Server error fetching user")
		return
	}
	respondData(c, http.StatusOK, user)
}

// DeleteUser is DELETE /admin/users/:id. Admin accounts are never deletable;
// everything owned by the target cascades.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("id", "invalid user id"), "")
		return
	}

	if err := h.Users.DeleteUser(uint(id)); err != nil {
		fail(c, err, "Server error deleting user")
		return
	}
	respondMessage(c, http.StatusOK, "User deleted successfully", nil)
}

// ListJobs is GET /admin/jobs: any status, employer summaries joined.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failBinding(c, err)
		return
	}
	q.Normalize()

	jobs, total, err := h.Jobs.AdminList(c.Query("status"), q.Page, q.Limit)
	if err != nil {
		fail(c, err, "Server error fetching jobs")
		return
	}
	respondPage(c, dtos.NewJobResponses(jobs), dtos.NewPageInfo(len(jobs), total, q.Page, q.Limit))
}

// Dashboard is GET /admin/stats.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, recentUsers, recentJobs, err := h.Stats.Dashboard()
	if err != nil {
		fail(c, err, "Server error fetching statistics")
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"statistics":  stats,
		"recentUsers": recentUsers,
		"recentJobs":  dtos.NewJobResponses(recentJobs),
	})
}
