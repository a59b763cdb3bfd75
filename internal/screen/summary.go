package screen

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

type SummaryScreen struct {
	api    API
	notify Notifier

	mu         sync.RWMutex
	summary    *dto.Summary
	refreshing bool
}

func NewSummaryScreen(api API, notify Notifier) *SummaryScreen {
	return &SummaryScreen{api: api, notify: notify}
}

func (s *SummaryScreen) Load(ctx context.Context) error {
	summary, err := s.api.Summary(ctx)
	if err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to load summary: %v", err))
		return err
	}
	s.mu.Lock()
	s.summary = &summary
	s.mu.Unlock()
	return nil
}

func (s *SummaryScreen) Refresh(ctx context.Context) error {
	s.setRefreshing(true)
	defer s.setRefreshing(false)
	return s.Load(ctx)
}

func (s *SummaryScreen) setRefreshing(v bool) {
	s.mu.Lock()
	s.refreshing = v
	s.mu.Unlock()
}

func (s *SummaryScreen) Refreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing
}

// Summary is nil until the first successful load.
func (s *SummaryScreen) Summary() *dto.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *SummaryScreen) averageScore() float64 {
	if sum := s.Summary(); sum != nil {
		return sum.AverageScore
	}
	return 0
}

func (s *SummaryScreen) ScoreLabel() string {
	return dto.RatingForScore(s.averageScore())
}

func (s *SummaryScreen) ScoreEmoji() string {
	return dto.EmojiForRating(s.ScoreLabel())
}

func (s *SummaryScreen) ScoreColor() string {
	return dto.ColorForRating(s.ScoreLabel())
}

// ChartSlices are the non-empty slices of the rating pie chart.
func (s *SummaryScreen) ChartSlices() []dto.ChartSlice {
	sum := s.Summary()
	if sum == nil || sum.TotalItems == 0 {
		return nil
	}
	out := make([]dto.ChartSlice, 0, len(sum.ChartData))
	for _, c := range sum.ChartData {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	return out
}

type RatingCount struct {
	Rating string
	Count  int
}

// Breakdown lists the ratings present in the cart, best first.
func (s *SummaryScreen) Breakdown() []RatingCount {
	sum := s.Summary()
	if sum == nil {
		return nil
	}
	var out []RatingCount
	for _, r := range dto.Ratings {
		if n := sum.RatingDistribution[r]; n > 0 {
			out = append(out, RatingCount{Rating: r, Count: n})
		}
	}
	return out
}

var listMarker = regexp.MustCompile(`^[\d\-*\s.]+`)

// Recommendations returns the tips with their list markers stripped.
func (s *SummaryScreen) Recommendations() []string {
	sum := s.Summary()
	if sum == nil {
		return nil
	}
	out := make([]string, 0, len(sum.Recommendations))
	for _, r := range sum.Recommendations {
		out = append(out, listMarker.ReplaceAllString(r, ""))
	}
	return out
}

func (s *SummaryScreen) EmptyState() (EmptyState, bool) {
	sum := s.Summary()
	switch {
	case sum == nil:
		return EmptyState{
			Title:    "No data to summarize",
			Subtitle: "Add items to your cart to see a sustainability summary!",
		}, true
	case sum.TotalItems == 0:
		return EmptyState{
			Title:    "Your cart is empty",
			Subtitle: "Add some items to your cart to see their sustainability summary!",
		}, true
	}
	return EmptyState{}, false
}
