package dtos

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`

	// Optional profile fields accepted at signup
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Company  string `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is a partial patch. Email and role are deliberately
// absent: neither can be changed after registration.
type UpdateProfileRequest struct {
	Name       *string   `json:"name" binding:"omitempty,max=50"`
	Password   *string   `json:"password" binding:"omitempty,min=6"`
	Phone      *string   `json:"phone"`
	Location   *string   `json:"location"`
	Skills     *[]string `json:"skills"`
	Experience *string   `json:"experience"`
	Education  *string   `json:"education"`
	Company    *string   `json:"company"`
}
