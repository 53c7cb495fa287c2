package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/models"
)

func TestApplyHappyPath(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")
	seeker := seekerWithResume(t, users, "seeker@example.com")

	application, err := applications.Apply(seeker, job.ID, "I would love to join.", nil)
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, seeker.Resume, application.ResumeURL)
	require.NotNil(t, application.Job, "response must carry the joined job")
	assert.Equal(t, "Backend Engineer", application.Job.Title)
	require.NotNil(t, application.JobSeeker, "response must carry the joined applicant")
	assert.Equal(t, seeker.ID, application.JobSeeker.ID)

	reloaded, err := jobs.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Applicants)
}

func TestApplyWithFreshUploadUpdatesProfile(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")
	seeker := registerUser(t, users, "Seeker", "seeker@example.com", models.RoleJobSeeker)

	uploaded := "/uploads/resumes/fresh.pdf"
	application, err := applications.Apply(seeker, job.ID, "", func() (string, error) {
		// mirrors what the handler does: persist the file, update the profile
		require.NoError(t, users.SetResume(seeker.ID, uploaded))
		return uploaded, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uploaded, application.ResumeURL)

	profile, err := users.GetByID(seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, uploaded, profile.Resume)
}

func TestApplyResumeRequired(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")
	seeker := registerUser(t, users, "Seeker", "seeker@example.com", models.RoleJobSeeker)

	_, err := applications.Apply(seeker, job.ID, "", nil)
	assert.ErrorIs(t, err, apperrors.ErrResumeRequired)
}

func TestApplyToInactiveJob(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	seeker := seekerWithResume(t, users, "seeker@example.com")

	for _, status := range []models.JobStatus{models.JobStatusClosed, models.JobStatusDraft} {
		job := createJob(t, jobs, employer.ID, "Role "+string(status))
		s := string(status)
		_, err := jobs.Update(job.ID, employer, &dtos.JobUpdateRequest{Status: &s})
		require.NoError(t, err)

		_, err = applications.Apply(seeker, job.ID, "", nil)
		assert.ErrorIs(t, err, apperrors.ErrJobNotAvailable)
	}
}

func TestApplyDuplicateRejected(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")
	seeker := seekerWithResume(t, users, "seeker@example.com")

	_, err := applications.Apply(seeker, job.ID, "", nil)
	require.NoError(t, err)

	_, err = applications.Apply(seeker, job.ID, "", nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	reloaded, err := jobs.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Applicants, "counter must not move on a rejected duplicate")
}

func TestDuplicateConstraintIsAuthoritative(t *testing.T) {
	// Simulates the race where both requests pass the early lookup: inserting
	// directly, bypassing the service check, must still fail on the unique
	// index and map to the duplicate error.
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")
	seeker := seekerWithResume(t, users, "seeker@example.com")

	first := &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, ResumeURL: seeker.Resume, Status: models.ApplicationPending}
	require.NoError(t, db.Create(first).Error)

	second := &models.Application{JobID: job.ID, JobSeekerID: seeker.ID, ResumeURL: seeker.Resume, Status: models.ApplicationPending}
	err := db.Create(second).Error
	require.Error(t, err, "the unique index must reject the second insert")

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ? AND job_seeker_id = ?", job.ID, seeker.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicantCounterMatchesApplications(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	job := createJob(t, jobs, employer.ID, "Backend Engineer")

	const n = 5
	for i := 0; i < n; i++ {
		seeker := seekerWithResume(t, users, fmt.Sprintf("seeker%d@example.com", i))
		_, err := applications.Apply(seeker, job.ID, "", nil)
		require.NoError(t, err)
	}

	reloaded, err := jobs.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, n, reloaded.Applicants)
}

func TestUpdateStatusOwnershipAndEnum(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	owner := registerUser(t, users, "Owner", "owner@example.com", models.RoleEmployer)
	other := registerUser(t, users, "Other", "other@example.com", models.RoleEmployer)
	job := createJob(t, jobs, owner.ID, "Backend Engineer")
	seeker := seekerWithResume(t, users, "seeker@example.com")

	application, err := applications.Apply(seeker, job.ID, "", nil)
	require.NoError(t, err)

	_, err = applications.UpdateStatus(application.ID, other.ID, "accepted")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = applications.UpdateStatus(application.ID, owner.ID, "shortlisted")
	assert.True(t, apperrors.IsValidation(err), "unknown status must be rejected")

	updated, err := applications.UpdateStatus(application.ID, owner.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.Status)

	// No transition graph: accepted back to pending is allowed.
	updated, err = applications.UpdateStatus(application.ID, owner.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, updated.Status)
}

func TestEmployerApplicationViews(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	owner := registerUser(t, users, "Owner", "owner@example.com", models.RoleEmployer)
	other := registerUser(t, users, "Other", "other@example.com", models.RoleEmployer)
	jobA := createJob(t, jobs, owner.ID, "Backend Engineer")
	jobB := createJob(t, jobs, owner.ID, "Frontend Engineer")
	jobOther := createJob(t, jobs, other.ID, "Designer")

	alice := seekerWithResume(t, users, "alice@example.com")
	bob := seekerWithResume(t, users, "bob@example.com")
	_, err := applications.Apply(alice, jobA.ID, "", nil)
	require.NoError(t, err)
	_, err = applications.Apply(bob, jobB.ID, "", nil)
	require.NoError(t, err)
	_, err = applications.Apply(alice, jobOther.ID, "", nil)
	require.NoError(t, err)

	// All applications across the owner's jobs, none from other employers.
	all, err := applications.ListForEmployer(owner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Per-job applicant list, gated by ownership.
	job, forJob, err := applications.ListForJob(jobA.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	require.Len(t, forJob, 1)
	require.NotNil(t, forJob[0].JobSeeker)
	assert.Equal(t, alice.ID, forJob[0].JobSeeker.ID)

	_, _, err = applications.ListForJob(jobA.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Single application view, same gate.
	_, err = applications.GetForEmployer(forJob[0].ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	got, err := applications.GetForEmployer(forJob[0].ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.JobSeekerID)
}

func TestSeekerApplicationList(t *testing.T) {
	db := openTestDB(t)
	users := newTestUserService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer := registerUser(t, users, "Employer", "hr@example.com", models.RoleEmployer)
	jobA := createJob(t, jobs, employer.ID, "Backend Engineer")
	jobB := createJob(t, jobs, employer.ID, "Frontend Engineer")
	seeker := seekerWithResume(t, users, "seeker@example.com")

	_, err := applications.Apply(seeker, jobA.ID, "", nil)
	require.NoError(t, err)
	_, err = applications.Apply(seeker, jobB.ID, "", nil)
	require.NoError(t, err)

	mine, err := applications.ListForSeeker(seeker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, a := range mine {
		require.NotNil(t, a.Job, "each entry must carry the joined job")
	}
}
