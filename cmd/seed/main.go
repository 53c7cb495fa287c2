// Command seed bootstraps a default admin account and, with -demo, fills the
// database with sample employers, job seekers, jobs and applications.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/config"
	"github.com/careerbridge/job-portal-api/internal/database"
	"github.com/careerbridge/job-portal-api/internal/models"
)

func main() {
	demo := flag.Bool("demo", false, "seed demo employers, job seekers, jobs and applications")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := seedAdmin(db, cfg.BcryptCost); err != nil {
		log.Fatal("Failed to seed admin: ", err)
	}

	if *demo {
		if err := seedDemoData(db, cfg.BcryptCost); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
	}
}

// seedAdmin creates the default admin unless one already exists.
func seedAdmin(db *gorm.DB, bcryptCost int) error {
	var existing models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := getEnv("ADMIN_EMAIL", "admin@jobportal.com")
	password := getEnv("ADMIN_PASSWORD", "Admin@123")
	name := getEnv("ADMIN_NAME", "System Admin")

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Default admin created:", admin.Email)
	log.Println("Change the password after first login")
	return nil
}

func seedDemoData(db *gorm.DB, bcryptCost int) error {
	hash, err := auth.HashPassword("Password123", bcryptCost)
	if err != nil {
		return err
	}

	employers := []models.User{
		{Name: "Tech Corp HR", Email: "hr@techcorp.example", Password: hash, Role: models.RoleEmployer, Company: "Tech Corp", Location: "San Francisco, CA", Verified: true},
		{Name: "Data Systems HR", Email: "hr@datasystems.example", Password: hash, Role: models.RoleEmployer, Company: "Data Systems", Location: "Austin, TX"},
	}
	seekers := []models.User{
		{Name: "Jane Doe", Email: "jane@example.com", Password: hash, Role: models.RoleJobSeeker, Location: "Remote", Skills: []string{"Go", "PostgreSQL", "Docker"}, Experience: "4 years of backend development", Resume: "/uploads/resumes/sample-jane.pdf"},
		{Name: "John Smith", Email: "john@example.com", Password: hash, Role: models.RoleJobSeeker, Location: "New York, NY", Skills: []string{"React", "TypeScript"}, Resume: "/uploads/resumes/sample-john.pdf"},
	}
	for i := range employers {
		if err := firstOrCreateByEmail(db, &employers[i]); err != nil {
			return err
		}
	}
	for i := range seekers {
		if err := firstOrCreateByEmail(db, &seekers[i]); err != nil {
			return err
		}
	}

	jobs := []models.Job{
		{
			Title:            "Backend Engineer",
			Description:      "Design and build the services behind our hiring platform, from API design through deployment and operations.",
			Requirements:     []string{"3+ years with Go or a similar language", "Solid SQL experience"},
			Responsibilities: []string{"Own services end to end", "Review code and mentor"},
			Company:          "Tech Corp",
			Location:         "San Francisco, CA",
			JobType:          models.JobTypeFullTime,
			Salary:           "$140k - $180k",
			EmployerID:       employers[0].ID,
			Status:           models.JobStatusActive,
		},
		{
			Title:            "Data Platform Intern",
			Description:      "Work alongside our data platform team on ingestion pipelines and internal tooling for a summer internship.",
			Requirements:     []string{"Currently enrolled in a CS program"},
			Responsibilities: []string{"Build internal tools", "Write tested, reviewed code"},
			Company:          "Data Systems",
			Location:         "Austin, TX",
			JobType:          models.JobTypeInternship,
			EmployerID:       employers[1].ID,
			Status:           models.JobStatusActive,
		},
	}
	for i := range jobs {
		jobs[i].PostedDate = time.Now()
		if err := db.Where(models.Job{Title: jobs[i].Title, EmployerID: jobs[i].EmployerID}).FirstOrCreate(&jobs[i]).Error; err != nil {
			return err
		}
	}

	applications := []models.Application{
		{JobID: jobs[0].ID, JobSeekerID: seekers[0].ID, ResumeURL: seekers[0].Resume, CoverLetter: "I have been building Go services for four years and would love to join.", Status: models.ApplicationPending},
		{JobID: jobs[0].ID, JobSeekerID: seekers[1].ID, ResumeURL: seekers[1].Resume, Status: models.ApplicationUnderReview},
	}
	for i := range applications {
		applications[i].AppliedAt = time.Now()
		err := db.Where(models.Application{JobID: applications[i].JobID, JobSeekerID: applications[i].JobSeekerID}).
			FirstOrCreate(&applications[i]).Error
		if err != nil {
			return err
		}
	}

	// Recompute applicant counters from the actual application counts.
	for _, job := range jobs {
		var count int64
		if err := db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Job{}).Where("id = ?", job.ID).Update("applicants", count).Error; err != nil {
			return err
		}
	}

	log.Println("Demo data seeded")
	return nil
}

func firstOrCreateByEmail(db *gorm.DB, user *models.User) error {
	return db.Where(models.User{Email: user.Email}).FirstOrCreate(user).Error
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
