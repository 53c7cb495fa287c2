package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"required,min=50"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`

	// Optional fields
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	JobType          string   `json:"job_type"` // defaults to "Full-time" if empty
	Salary           string   `json:"salary"`
	Status           string   `json:"status"` // defaults to "active" if empty
}

// JobUpdateRequest patches individual fields; nil means "leave unchanged".
type JobUpdateRequest struct {
	Title            *string   `json:"title" binding:"omitempty,max=100"`
	Description      *string   `json:"description" binding:"omitempty,min=50"`
	Requirements     *[]string `json:"requirements"`
	Responsibilities *[]string `json:"responsibilities"`
	Company          *string   `json:"company"`
	Location         *string   `json:"location"`
	JobType          *string   `json:"job_type"`
	Salary           *string   `json:"salary"`
	Status           *string   `json:"status"`
}

// JobListQuery carries the public listing filters.
type JobListQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	JobType  string `form:"jobType"`
	PageQuery
}
