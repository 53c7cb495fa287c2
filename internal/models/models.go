package models

import (
	"time"
)

// Role determines what a user is allowed to do. It is fixed at registration;
// no operation changes it afterwards.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

// ApplicationStatus is the canonical status set. The frontend may render
// aliases ("reviewing"), but only these four values exist server-side.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under review"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"not null" json:"name"`
	// Emails are lowercased before they reach the database, so the unique
	// index is effectively case-insensitive.
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(16);default:'jobseeker'" json:"role"`

	Phone    string `json:"phone"`
	Location string `json:"location"`

	// Job seeker fields
	Resume     string   `json:"resume"`
	Skills     []string `gorm:"serializer:json" json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`

	// Employer fields
	Company     string `json:"company"`
	CompanyLogo string `json:"company_logo"`

	Verified bool `gorm:"default:false" json:"verified"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	Requirements     []string  `gorm:"serializer:json" json:"requirements"`
	Responsibilities []string  `gorm:"serializer:json" json:"responsibilities"`
	Company          string    `gorm:"not null" json:"company"`
	Location         string    `gorm:"not null" json:"location"`
	JobType          JobType   `gorm:"type:varchar(16);default:'Full-time'" json:"job_type"`
	Salary           string    `json:"salary"`
	EmployerID       uint      `gorm:"index;not null" json:"employer_id"`
	Employer         *User     `json:"-"`
	Applicants       int       `gorm:"default:0" json:"applicants"`
	Status           JobStatus `gorm:"type:varchar(16);default:'active';index" json:"status"`
	PostedDate       time.Time `json:"posted_date"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// The composite unique index is the authoritative guard against
	// concurrent duplicate submissions; the service-level lookup only
	// exists to return a friendlier error first.
	JobID       uint              `gorm:"index;uniqueIndex:idx_job_applicant;not null" json:"job_id"`
	Job         *Job              `json:"-"`
	JobSeekerID uint              `gorm:"index;uniqueIndex:idx_job_applicant;not null" json:"job_seeker_id"`
	JobSeeker   *User             `json:"-"`
	ResumeURL   string            `gorm:"not null" json:"resume_url"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
}
