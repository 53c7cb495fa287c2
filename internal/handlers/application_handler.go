package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/middleware"
	"github.com/careerbridge/job-portal-api/internal/services"
	"github.com/careerbridge/job-portal-api/internal/storage"
)

const resumeFolder = "resumes"

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Users        *services.UserService
	Store        storage.ObjectStore
}

func NewApplicationHandler(applications *services.ApplicationService, users *services.UserService, store storage.ObjectStore) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Users: users, Store: store}
}

// Apply is POST /applications/apply (job seeker only). Multipart form:
// jobId, coverLetter, and an optional "resume" PDF. A fresh upload also
// becomes the seeker's profile resume.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		failBinding(c, err)
		return
	}

	seeker := middleware.CurrentUser(c)

	var uploadResume func() (string, error)
	header, err := c.FormFile("resume")
	switch {
	case err == nil:
		if err := storage.ValidateResume(header); err != nil {
			fail(c, err, "")
			return
		}
		uploadResume = func() (string, error) {
			data, err := storage.ReadUpload(header)
			if err != nil {
				return "", err
			}
			url, err := h.Store.Save(resumeFolder, header.Filename, data)
			if err != nil {
				return "", err
			}
			if err := h.Users.SetResume(seeker.ID, url); err != nil {
				return "", err
			}
			return url, nil
		}
	case errors.Is(err, http.ErrMissingFile):
		// fall back to the profile resume
	default:
		fail(c, apperrors.ErrUpload, "")
		return
	}

	application, err := h.Applications.Apply(seeker, req.JobID, req.CoverLetter, uploadResume)
	if err != nil {
		fail(c, err, "Server error submitting application")
		return
	}
	respondMessage(c, http.StatusCreated, "Application submitted successfully", dtos.NewApplicationResponse(*application))
}

// MyApplications is GET /applications/my-applications (job seeker only).
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	applications, err := h.Applications.ListForSeeker(middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err, "Server error fetching applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(applications),
		"data":    dtos.NewApplicationResponses(applications),
	})
}

// EmployerApplications is GET /applications/employer/applications: every
// application across the employer's jobs.
func (h *ApplicationHandler) EmployerApplications(c *gin.Context) {
	applications, err := h.Applications.ListForEmployer(middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err, "Server error fetching applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(applications),
		"data":    dtos.NewApplicationResponses(applications),
	})
}

// JobApplicants is GET /applications/job/:jobId (owning employer only).
func (h *ApplicationHandler) JobApplicants(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("jobId", "invalid job id"), "")
		return
	}

	job, applications, err := h.Applications.ListForJob(uint(jobID), middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err, "Server error fetching applicants")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(applications),
		"jobTitle": job.Title,
		"data":     dtos.NewApplicationResponses(applications),
	})
}

// Get is GET /applications/:id (employer owning the job only).
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("id", "invalid application id"), "")
		return
	}

	application, err := h.Applications.GetForEmployer(uint(id), middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err, "Server error fetching application")
		return
	}
	respondData(c, http.StatusOK, dtos.NewApplicationResponse(*application))
}

// UpdateStatus is PUT /applications/:id/status (employer owning the job
// only).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperrors.Validation("id", "invalid application id"), "")
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	application, err := h.Applications.UpdateStatus(uint(id), middleware.CurrentUser(c).ID, req.Status)
	if err != nil {
		fail(c, err, "Server error updating application status")
		return
	}
	respondMessage(c, http.StatusOK, "Application status updated successfully", dtos.NewApplicationResponse(*application))
}

// UploadResume is POST /applications/upload-resume (job seeker only):
// replaces the profile resume without applying anywhere.
func (h *ApplicationHandler) UploadResume(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil {
		fail(c, apperrors.Validation("resume", "please upload a resume file"), "")
		return
	}
	if err := storage.ValidateResume(header); err != nil {
		fail(c, err, "")
		return
	}

	data, err := storage.ReadUpload(header)
	if err != nil {
		fail(c, err, "Error uploading resume")
		return
	}
	url, err := h.Store.Save(resumeFolder, header.Filename, data)
	if err != nil {
		fail(c, err, "Error uploading resume")
		return
	}
	if err := h.Users.SetResume(middleware.CurrentUser(c).ID, url); err != nil {
		fail(c, err, "Error uploading resume")
		return
	}

	respondMessage(c, http.StatusOK, "Resume uploaded successfully", gin.H{"resumeUrl": url})
}
