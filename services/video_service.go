package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kotseai-backend/models"
	"kotseai-backend/utils/logger"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// VideoService looks up DIY video suggestions for a maintenance task.
// Every failure mode (missing key, transport error, bad payload) returns an
// empty list; video suggestions are an enhancement, never a blocker.
type VideoService struct {
	apiKey     string
	maxResults int
	httpClient *http.Client
	logger     logger.Logger
}

// NewVideoService creates a new video suggestion service
func NewVideoService(cfg *models.Config, log logger.Logger) *VideoService {
	maxResults := cfg.YouTubeMaxResults
	if maxResults <= 0 || maxResults > 10 {
		maxResults = 3
	}
	return &VideoService{
		apiKey:     cfg.YouTubeAPIKey,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to maxResults video suggestions for the query
func (s *VideoService) Search(ctx context.Context, query string) []models.VideoSuggestion {
	if s.apiKey == "" {
		s.logger.Warn("Video lookup skipped: no YouTube API key configured")
		return []models.VideoSuggestion{}
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("order", "relevance")
	params.Set("maxResults", strconv.Itoa(s.maxResults))
	params.Set("q", query)
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, youtubeSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		s.logger.Errorf("Failed to build video search request: %v", err)
		return []models.VideoSuggestion{}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Errorf("Video search call failed: %v", err)
		return []models.VideoSuggestion{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Errorf("Video search returned status %d", resp.StatusCode)
		return []models.VideoSuggestion{}
	}

	var payload youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Errorf("Failed to decode video search response: %v", err)
		return []models.VideoSuggestion{}
	}

	suggestions := make([]models.VideoSuggestion, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID.VideoID == "" {
			continue
		}
		suggestions = append(suggestions, models.VideoSuggestion{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
		})
	}
	return suggestions
}
