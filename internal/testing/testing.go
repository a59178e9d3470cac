// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/services"
)

// MockEmotionService is a test double for [services.EmotionService]
type MockEmotionService struct {
	Lookup    *services.EmotionLookup
	LookupErr error
	Calls     []string
}

func (m *MockEmotionService) LatestEmotionByPhone(ctx context.Context, phone string) (*services.EmotionLookup, error) {
	m.Calls = append(m.Calls, phone)
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Lookup, nil
}

// MockFollowService is a test double for [services.FollowService]
type MockFollowService struct {
	Following    []string
	FollowingErr error
	FollowErr    error
	Followed     []string
	Unfollowed   []string
}

func (m *MockFollowService) GetFollowing(ctx context.Context, user string) ([]string, error) {
	if m.FollowingErr != nil {
		return nil, m.FollowingErr
	}
	return m.Following, nil
}

func (m *MockFollowService) Follow(ctx context.Context, user, follower string) error {
	if m.FollowErr != nil {
		return m.FollowErr
	}
	m.Followed = append(m.Followed, follower)
	return nil
}

func (m *MockFollowService) Unfollow(ctx context.Context, user, follower string) error {
	m.Unfollowed = append(m.Unfollowed, follower)
	return nil
}

// MockActivityLogger is a test double for [services.ActivityLogger]
type MockActivityLogger struct {
	Events []models.BehaviorEvent
	LogErr error
}

func (m *MockActivityLogger) LogActivity(ctx context.Context, email string, event models.BehaviorEvent) error {
	if m.LogErr != nil {
		return m.LogErr
	}
	m.Events = append(m.Events, event)
	return nil
}

// MockCelebrityFeed is a test double for [services.CelebrityFeed]
type MockCelebrityFeed struct {
	Entries  []services.CelebrityEntry
	FetchErr error
}

func (m *MockCelebrityFeed) CelebrityMoods(ctx context.Context) ([]services.CelebrityEntry, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Entries, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
