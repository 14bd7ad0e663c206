package models

// VideoSuggestion is one DIY video hit returned for a maintenance task
type VideoSuggestion struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumb"`
}
