package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careerbridge/job-portal-api/internal/database"
	"github.com/careerbridge/job-portal-api/internal/dtos"
	"github.com/careerbridge/job-portal-api/internal/models"
)

// openTestDB gives every test its own in-memory database with the real
// schema, including the unique indexes the services rely on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // one in-memory database, one connection

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestUserService(db *gorm.DB) *UserService {
	return NewUserService(db, bcrypt.MinCost)
}

func registerUser(t *testing.T, users *UserService, name, email string, role models.Role) *models.User {
	t.Helper()
	user, err := users.Register(&dtos.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     string(role),
	})
	require.NoError(t, err)
	return user
}

func createJob(t *testing.T, jobs *JobService, employerID uint, title string) *models.Job {
	t.Helper()
	job, err := jobs.Create(employerID, &dtos.JobCreationRequest{
		Title:       title,
		Description: "We are hiring an engineer to build and operate our hiring platform services.",
		Company:     "Tech Corp",
		Location:    "San Francisco, CA",
	})
	require.NoError(t, err)
	return job
}

func seekerWithResume(t *testing.T, users *UserService, email string) *models.User {
	t.Helper()
	seeker := registerUser(t, users, "Seeker", email, models.RoleJobSeeker)
	require.NoError(t, users.SetResume(seeker.ID, "/uploads/resumes/seeker.pdf"))
	seeker.Resume = "/uploads/resumes/seeker.pdf"
	return seeker
}
