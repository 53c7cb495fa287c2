package dtos

import (
	"github.com/careerbridge/job-portal-api/internal/models"
)

// PageQuery is the common page/limit pair; out-of-range values fall back to
// the defaults rather than erroring.
type PageQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}

// PageInfo is the pagination block list responses carry alongside data.
type PageInfo struct {
	Count      int   `json:"count"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

func NewPageInfo(count int, total int64, page, limit int) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{Count: count, Total: total, Page: page, TotalPages: totalPages}
}

// EmployerSummary is the slice of an employer profile embedded in job
// responses, replacing the original's ad-hoc populate().
type EmployerSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`
}

func SummarizeEmployer(u *models.User) *EmployerSummary {
	if u == nil {
		return nil
	}
	return &EmployerSummary{
		ID:          u.ID,
		Name:        u.Name,
		Company:     u.Company,
		Email:       u.Email,
		Phone:       u.Phone,
		Location:    u.Location,
		CompanyLogo: u.CompanyLogo,
	}
}

// JobSummary is the slice of a job embedded in application responses.
type JobSummary struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Location string           `json:"location"`
	Salary   string           `json:"salary,omitempty"`
	JobType  models.JobType   `json:"job_type"`
	Status   models.JobStatus `json:"status"`
}

func SummarizeJob(j *models.Job) *JobSummary {
	if j == nil {
		return nil
	}
	return &JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Company:  j.Company,
		Location: j.Location,
		Salary:   j.Salary,
		JobType:  j.JobType,
		Status:   j.Status,
	}
}

// ApplicantSummary is the slice of a job seeker profile embedded in
// application responses shown to employers.
type ApplicantSummary struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

func SummarizeApplicant(u *models.User) *ApplicantSummary {
	if u == nil {
		return nil
	}
	return &ApplicantSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Location:   u.Location,
		Skills:     u.Skills,
		Experience: u.Experience,
		Education:  u.Education,
		Resume:     u.Resume,
	}
}

// JobResponse is a job joined with its employer summary.
type JobResponse struct {
	models.Job
	Employer *EmployerSummary `json:"employer,omitempty"`
}

func NewJobResponse(j models.Job) JobResponse {
	resp := JobResponse{Job: j, Employer: SummarizeEmployer(j.Employer)}
	resp.Job.Employer = nil
	return resp
}

// ApplicationResponse is an application joined with job and applicant
// summaries.
type ApplicationResponse struct {
	models.Application
	Job       *JobSummary       `json:"job,omitempty"`
	JobSeeker *ApplicantSummary `json:"job_seeker,omitempty"`
}

func NewApplicationResponse(a models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		Application: a,
		Job:         SummarizeJob(a.Job),
		JobSeeker:   SummarizeApplicant(a.JobSeeker),
	}
	resp.Application.Job = nil
	resp.Application.JobSeeker = nil
	return resp
}

func NewJobResponses(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewApplicationResponses(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
