package user

// UpdateProfileDTO is a partial update of the public profile fields.
type UpdateProfileDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
