package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply runs the application workflow for a job seeker:
//
//  1. the job must exist and be active
//  2. no prior application for (job, seeker) may exist
//  3. uploadResume, when non-nil, persists the freshly uploaded file and
//     returns its URL (updating the seeker's profile as a side effect);
//     otherwise the profile's stored resume is used
//  4. the application is created pending and the job's applicant counter is
//     incremented
//
// The insert and the counter increment are two writes, in that order, inside
// one transaction. The composite unique index resolves the race between
// concurrent duplicate submissions: the loser's insert fails and surfaces as
// a duplicate-application error.
func (s *ApplicationService) Apply(seeker *models.User, jobID uint, coverLetter string, uploadResume func() (string, error)) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotAvailable
	}

	var existing models.Application
	err := s.DB.Where("job_id = ? AND job_seeker_id = ?", jobID, seeker.ID).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	resumeURL := seeker.Resume
	if uploadResume != nil {
		resumeURL, err = uploadResume()
		if err != nil {
			return nil, err
		}
	}
	if resumeURL == "" {
		return nil, apperrors.ErrResumeRequired
	}

	application := &models.Application{
		JobID:       jobID,
		JobSeekerID: seeker.ID,
		ResumeURL:   resumeURL,
		CoverLetter: coverLetter,
		Status:      models.ApplicationPending,
		AppliedAt:   time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			UpdateColumn("applicants", gorm.Expr("applicants + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, err
	}

	return s.getWithJoins(application.ID)
}

func (s *ApplicationService) getWithJoins(id uint) (*models.Application, error) {
	var application models.Application
	err := s.DB.Preload("Job").Preload("JobSeeker").First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// ListForSeeker returns a job seeker's own applications, newest first, with
// jobs joined.
func (s *ApplicationService) ListForSeeker(seekerID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.
		Preload("Job").
		Where("job_seeker_id = ?", seekerID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

// ListForEmployer returns every application across all of one employer's
// jobs, with jobs and applicants joined.
func (s *ApplicationService) ListForEmployer(employerID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.
		Preload("Job").
		Preload("JobSeeker").
		Where("job_id IN (?)", s.DB.Model(&models.Job{}).Select("id").Where("employer_id = ?", employerID)).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

// ListForJob returns the applicants for one job. Only the owning employer
// may see them.
func (s *ApplicationService) ListForJob(jobID, employerID uint) (*models.Job, []models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, err
	}
	if job.EmployerID != employerID {
		return nil, nil, apperrors.ErrForbidden
	}

	var applications []models.Application
	err := s.DB.
		Preload("JobSeeker").
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, nil, err
	}
	return &job, applications, nil
}

// GetForEmployer loads one application, joined, for the employer owning its
// job.
func (s *ApplicationService) GetForEmployer(id, employerID uint) (*models.Application, error) {
	application, err := s.getWithJoins(id)
	if err != nil {
		return nil, err
	}
	if application.Job == nil || application.Job.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}
	return application, nil
}

// UpdateStatus moves an application to any of the four statuses. There is no
// transition graph; the only constraints are enum membership and that the
// caller owns the job.
func (s *ApplicationService) UpdateStatus(id, employerID uint, status string) (*models.Application, error) {
	newStatus := models.ApplicationStatus(status)
	if !models.ValidApplicationStatus(newStatus) {
		return nil, apperrors.Validation("status", "invalid status value")
	}

	application, err := s.getWithJoins(id)
	if err != nil {
		return nil, err
	}
	if application.Job == nil || application.Job.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.DB.Model(&models.Application{}).Where("id = ?", id).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	application.Status = newStatus
	return application, nil
}
