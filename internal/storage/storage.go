// Package storage persists uploaded files (resumes, company logos) and hands
// back the URL the rest of the system stores. The interface keeps the media
// host swappable; DiskStore is the local implementation.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
)

// MaxFileSize is the upload cap for both resumes and logos.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

// ObjectStore saves uploaded files under a folder and returns a public URL.
type ObjectStore interface {
	Save(folder, filename string, data []byte) (string, error)
}

// ValidateResume rejects non-PDF or oversized resume uploads before anything
// touches the store.
func ValidateResume(header *multipart.FileHeader) error {
	if header.Size > MaxFileSize {
		return apperrors.Validation("resume", "file size cannot exceed 5MB")
	}
	if header.Header.Get("Content-Type") != "application/pdf" && !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return apperrors.Validation("resume", "only PDF files are allowed for resumes")
	}
	return nil
}

// ValidateLogo rejects non-image or oversized company logo uploads.
func ValidateLogo(header *multipart.FileHeader) error {
	if header.Size > MaxFileSize {
		return apperrors.Validation("companyLogo", "file size cannot exceed 5MB")
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return apperrors.Validation("companyLogo", "only image files are allowed for company logos")
	}
	return nil
}

// ReadUpload pulls the file contents out of a multipart header, enforcing
// the size cap again in case the header lied.
func ReadUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpload, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpload, err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, apperrors.Validation("file", "file size cannot exceed 5MB")
	}
	return data, nil
}
