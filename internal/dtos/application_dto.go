package dtos

// ApplyRequest arrives as multipart form data; the resume file rides
// alongside under the "resume" field.
type ApplyRequest struct {
	JobID       uint   `form:"jobId" binding:"required"`
	CoverLetter string `form:"coverLetter" binding:"max=1000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
