package services

import (
	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// PublicStats is the rollup shown on the landing page.
type PublicStats struct {
	ActiveJobs        int64 `json:"activeJobs"`
	TotalUsers        int64 `json:"totalUsers"`
	Companies         int64 `json:"companies"`
	TotalApplications int64 `json:"totalApplications"`
}

// DashboardStats is the admin dashboard rollup. Everything is recomputed on
// each load; nothing is cached.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	JobSeekers        int64 `json:"jobSeekers"`
	Employers         int64 `json:"employers"`
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

func (s *StatsService) Public() (*PublicStats, error) {
	stats := &PublicStats{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.ActiveJobs, s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)},
		{&stats.TotalUsers, s.DB.Model(&models.User{})},
		{&stats.Companies, s.DB.Model(&models.User{}).Where("role = ?", models.RoleEmployer)},
		{&stats.TotalApplications, s.DB.Model(&models.Application{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// Dashboard returns admin counters plus the 5 most recent users and jobs.
func (s *StatsService) Dashboard() (*DashboardStats, []models.User, []models.Job, error) {
	stats := &DashboardStats{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.DB.Model(&models.User{})},
		{&stats.JobSeekers, s.DB.Model(&models.User{}).Where("role = ?", models.RoleJobSeeker)},
		{&stats.Employers, s.DB.Model(&models.User{}).Where("role = ?", models.RoleEmployer)},
		{&stats.TotalJobs, s.DB.Model(&models.Job{})},
		{&stats.ActiveJobs, s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)},
		{&stats.TotalApplications, s.DB.Model(&models.Application{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, nil, nil, err
		}
	}

	var recentUsers []models.User
	if err := s.DB.Order("created_at DESC").Limit(5).Find(&recentUsers).Error; err != nil {
		return nil, nil, nil, err
	}

	var recentJobs []models.Job
	if err := s.DB.Preload("Employer").Order("created_at DESC").Limit(5).Find(&recentJobs).Error; err != nil {
		return nil, nil, nil, err
	}

	return stats, recentUsers, recentJobs, nil
}
