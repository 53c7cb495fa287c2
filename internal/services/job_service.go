package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create posts a new job owned by the given employer.
func (s *JobService) Create(employerID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	jobType := models.JobType(req.JobType)
	if req.JobType == "" {
		jobType = models.JobTypeFullTime
	}
	if !models.ValidJobType(jobType) {
		return nil, apperrors.Validation("job_type", "invalid job type")
	}

	status := models.JobStatus(req.Status)
	if req.Status == "" {
		status = models.JobStatusActive
	}
	if !models.ValidJobStatus(status) {
		return nil, apperrors.Validation("status", "invalid status")
	}

	job := &models.Job{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Company:          strings.TrimSpace(req.Company),
		Location:         strings.TrimSpace(req.Location),
		JobType:          jobType,
		Salary:           strings.TrimSpace(req.Salary),
		EmployerID:       employerID,
		Status:           status,
		PostedDate:       time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// List returns a page of active jobs matching the public listing filters.
// Search is a case-insensitive substring match OR'd across title,
// description and company.
func (s *JobService) List(q *dtos.JobListQuery) ([]models.Job, int64, error) {
	q.Normalize()

	query := s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if location := strings.TrimSpace(q.Location); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if q.JobType != "" {
		query = query.Where("job_type = ?", q.JobType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Preload("Employer").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetByID loads a job joined with its employer.
func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Employer").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ListByEmployer returns all jobs posted by one employer, newest first.
func (s *JobService) ListByEmployer(employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Update patches a job. Only the owning employer may update; the ownership
// check runs before any field is touched.
func (s *JobService) Update(id uint, caller *models.User, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != caller.ID {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.Validation("title", "job title is required")
		}
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Company != nil {
		if strings.TrimSpace(*req.Company) == "" {
			return nil, apperrors.Validation("company", "company name is required")
		}
		job.Company = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		if strings.TrimSpace(*req.Location) == "" {
			return nil, apperrors.Validation("location", "location is required")
		}
		job.Location = strings.TrimSpace(*req.Location)
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		if !models.ValidJobType(jobType) {
			return nil, apperrors.Validation("job_type", "invalid job type")
		}
		job.JobType = jobType
	}
	if req.Salary != nil {
		job.Salary = strings.TrimSpace(*req.Salary)
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		if !models.ValidJobStatus(status) {
			return nil, apperrors.Validation("status", "invalid status")
		}
		job.Status = status
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job and cascades to its applications. Allowed for the
// owning employer or an admin.
func (s *JobService) Delete(id uint, caller *models.User) error {
	job, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if job.EmployerID != caller.ID && caller.Role != models.RoleAdmin {
		return apperrors.ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, job.ID).Error
	})
}

// AdminList returns a page of jobs in any status, with employers joined.
func (s *JobService) AdminList(status string, page, limit int) ([]models.Job, int64, error) {
	query := s.DB.Model(&models.Job{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Preload("Employer").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
