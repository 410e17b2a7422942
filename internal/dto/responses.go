package dto

// AuthResponse represents a successful signup/login/exchange response
type AuthResponse struct {
	UserID  string  `json:"user_id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Picture *string `json:"picture,omitempty"`
}

// RatingResponse represents a profile's rating for one anime. Both fields
// are null when the profile has not rated the title.
type RatingResponse struct {
	Liked *bool `json:"liked"`
	Score *int  `json:"score"`
}

// ReviewCreatedResponse carries the id of an appended review
type ReviewCreatedResponse struct {
	Message  string `json:"message"`
	ReviewID string `json:"review_id"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
