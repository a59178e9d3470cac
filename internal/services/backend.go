// Mood backend (Django) API implementation
//
// Endpoint shapes follow the backend's JSON contracts exactly; they must not
// drift or older clients stop round-tripping.
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

const (
	latestEmotionPath  = "/api/contacts/latest_emotion_by_phone"
	getFollowingPath   = "/api/followers/get_following"
	followPath         = "/api/followers/follow"
	unfollowPath       = "/api/followers/unfollow"
	logActivityPath    = "/api/logger/log-activity"
	celebrityMoodsPath = "/api/celebrities/moods"
)

// emotionPayload mirrors the nested "emotion" object in lookup responses.
type emotionPayload struct {
	BehaviorFactors    string `json:"behavior_factors"`
	HealthFactors      string `json:"health_factors"`
	PredictedEmojiID   int    `json:"predicted_emoji_id"`
	UserEmotionProfile string `json:"user_emotion_profile"`
}

type emotionLookupResponse struct {
	City        string         `json:"city"`
	Emotion     emotionPayload `json:"emotion"`
	PhoneNumber string         `json:"phonenumber"`
	Username    string         `json:"username"`
}

type followingResponse struct {
	User      string   `json:"user"`
	Following []string `json:"following"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type celebrityMoodResponse struct {
	Name               string `json:"name"`
	PredictedEmojiID   int    `json:"predicted_emoji_id"`
	UserEmotionProfile string `json:"user_emotion_profile"`
}

// MoodService is the HTTP client for the mood backend.
//
// Implements [EmotionService], [FollowService], [ActivityLogger], and [CelebrityFeed].
type MoodService struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ EmotionService = (*MoodService)(nil)
	_ FollowService  = (*MoodService)(nil)
	_ ActivityLogger = (*MoodService)(nil)
	_ CelebrityFeed  = (*MoodService)(nil)
)

// NewMoodService creates a mood backend client for the given base URL.
func NewMoodService(baseURL string, client *http.Client) *MoodService {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &MoodService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// doJSON performs a request with an optional JSON body and decodes a JSON response into result.
//
// Maps 404 to [shared.ErrNotFound], other non-2xx statuses to [shared.ErrAPIRequest],
// and undecodable bodies to [shared.ErrDecodeFailed].
func (m *MoodService) doJSON(ctx context.Context, method, path string, payload, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrDecodeFailed, err)
		}
	}

	return nil
}

// LatestEmotionByPhone fetches the most recent emotion snapshot for a phone number.
func (m *MoodService) LatestEmotionByPhone(ctx context.Context, phone string) (*EmotionLookup, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: empty phone number", shared.ErrInvalidInput)
	}

	payload := map[string]string{"phone": phone}

	var resp emotionLookupResponse
	if err := m.doJSON(ctx, http.MethodPost, latestEmotionPath, payload, &resp); err != nil {
		return nil, err
	}

	return &EmotionLookup{
		City:            resp.City,
		BehaviorFactors: resp.Emotion.BehaviorFactors,
		HealthFactors:   resp.Emotion.HealthFactors,
		ProfileText:     resp.Emotion.UserEmotionProfile,
		EmotionCode:     resp.Emotion.PredictedEmojiID,
		PhoneNumber:     resp.PhoneNumber,
		Username:        resp.Username,
	}, nil
}

// GetFollowing fetches the phone numbers the user follows on the backend.
func (m *MoodService) GetFollowing(ctx context.Context, user string) ([]string, error) {
	if user == "" {
		return nil, shared.ErrMissingIdentity
	}

	payload := map[string]string{"user": user}

	var resp followingResponse
	if err := m.doJSON(ctx, http.MethodPost, getFollowingPath, payload, &resp); err != nil {
		return nil, err
	}

	return resp.Following, nil
}

// Follow adds follower to the user's backend following list.
func (m *MoodService) Follow(ctx context.Context, user, follower string) error {
	return m.mutateFollowing(ctx, followPath, user, follower)
}

// Unfollow removes follower from the user's backend following list.
func (m *MoodService) Unfollow(ctx context.Context, user, follower string) error {
	return m.mutateFollowing(ctx, unfollowPath, user, follower)
}

func (m *MoodService) mutateFollowing(ctx context.Context, path, user, follower string) error {
	if user == "" {
		return shared.ErrMissingIdentity
	}
	if follower == "" {
		return fmt.Errorf("%w: empty follower phone", shared.ErrInvalidInput)
	}

	payload := map[string]string{"user": user, "follower": follower}

	var resp messageResponse
	return m.doJSON(ctx, http.MethodPost, path, payload, &resp)
}

// LogActivity submits a single behavior event to the logging endpoint.
func (m *MoodService) LogActivity(ctx context.Context, email string, event models.BehaviorEvent) error {
	activity := map[string]any{
		"action": event.Action,
		"time":   event.Timestamp.UTC().Format(time.RFC3339),
	}

	if event.Tab != "" {
		activity["tab"] = event.Tab
	}
	if event.Coordinates != nil {
		activity["latitude"] = event.Coordinates.Latitude
		activity["longitude"] = event.Coordinates.Longitude
	}
	if event.DurationSec > 0 {
		activity["duration_seconds"] = event.DurationSec
	}
	for k, v := range event.Payload {
		activity[k] = v
	}

	payload := map[string]any{
		"email":    email,
		"activity": activity,
	}

	var resp messageResponse
	return m.doJSON(ctx, http.MethodPost, logActivityPath, payload, &resp)
}

// CelebrityMoods fetches the public celebrity mood feed.
func (m *MoodService) CelebrityMoods(ctx context.Context) ([]CelebrityEntry, error) {
	var resp []celebrityMoodResponse
	if err := m.doJSON(ctx, http.MethodGet, celebrityMoodsPath, nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]CelebrityEntry, 0, len(resp))
	for _, c := range resp {
		entries = append(entries, CelebrityEntry{
			Name:        c.Name,
			EmotionCode: c.PredictedEmojiID,
			ProfileText: c.UserEmotionProfile,
		})
	}

	return entries, nil
}
