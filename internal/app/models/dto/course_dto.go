package dto

// CreateCourseRequest represents a course creation payload.
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Photos      *string  `json:"photos"`
	Mentor      string   `json:"mentor" binding:"required"`
	RoleMentor  string   `json:"rolementor" binding:"required"`
	Avatar      *string  `json:"avatar"`
	Company     string   `json:"company" binding:"required"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount *int     `json:"review_count" binding:"omitempty,min=0"`
	Price       string   `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=Pemasaran Desain 'Pengembangan Diri' Bisnis"`
}

// UpdateCourseRequest represents a partial update; only keys present in the
// payload are applied.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Photos      *string  `json:"photos"`
	Mentor      *string  `json:"mentor"`
	RoleMentor  *string  `json:"rolementor"`
	Avatar      *string  `json:"avatar"`
	Company     *string  `json:"company"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount *int     `json:"review_count" binding:"omitempty,min=0"`
	Price       *string  `json:"price"`
	Category    *string  `json:"category" binding:"omitempty,oneof=Pemasaran Desain 'Pengembangan Diri' Bisnis"`
}

// IsEmpty reports whether no recognized field was supplied.
func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Photos == nil &&
		r.Mentor == nil && r.RoleMentor == nil && r.Avatar == nil &&
		r.Company == nil && r.Rating == nil && r.ReviewCount == nil &&
		r.Price == nil && r.Category == nil
}
