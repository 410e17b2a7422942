package dto

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileCreateRequest represents a profile creation request
type ProfileCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar" binding:"required"`
	IsKid  bool   `json:"is_kid"`
}

// WatchProgressRequest represents a watch-progress update
type WatchProgressRequest struct {
	AnimeID         string `json:"anime_id" binding:"required"`
	EpisodeID       string `json:"episode_id" binding:"required"`
	ProgressSeconds int    `json:"progress_seconds" binding:"min=0"`
	Completed       bool   `json:"completed"`
}

// RatingRequest represents a rating upsert. Both fields are optional; a
// request may carry only a thumb or only a score.
type RatingRequest struct {
	AnimeID string `json:"anime_id" binding:"required"`
	Liked   *bool  `json:"liked"`
	Score   *int   `json:"score" binding:"omitempty,min=1,max=10"`
}

// ReviewRequest represents a review creation request
type ReviewRequest struct {
	AnimeID string `json:"anime_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Spoiler bool   `json:"spoiler"`
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
}
