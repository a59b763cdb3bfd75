package screen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/client"
	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItem(t *testing.T) {
	j := judgment("food_1", "Oat Milk", 78, dto.RatingGreat)
	j.Rationale = "Plant based."
	j.Breakdown = map[string]dto.CategoryScore{
		"processing_level": {Score: 75, Reasoning: "Few ingredients"},
		"carbon_footprint": {Score: 100, Reasoning: "Low"},
		"water_use":        {Score: 40, Reasoning: "Oats are thirsty"},
	}
	j.DataGaps = []string{"Origin unknown"}

	collapsed := RenderItem(j, false)
	assert.Equal(t, 1, strings.Count(collapsed, "\n"))
	assert.Contains(t, collapsed, "78% (GREAT)")
	assert.Contains(t, collapsed, "[food_1]")

	expanded := RenderItem(j, true)
	carbon := strings.Index(expanded, "Carbon Footprint")
	processing := strings.Index(expanded, "Processing Level")
	water := strings.Index(expanded, "Water Use")
	require.True(t, carbon > 0 && processing > 0 && water > 0)
	assert.Less(t, carbon, processing)
	assert.Less(t, processing, water)
	assert.Contains(t, expanded, "• Origin unknown")
}

func TestRenderItem_TruncatesLongNames(t *testing.T) {
	j := judgment("x", strings.Repeat("Extremely Long Product Name ", 4), 50, dto.RatingGood)
	assert.Contains(t, RenderItem(j, false), "…")
}

func TestCartScreen_AgainstHTTPBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/cart":
			_, _ = w.Write([]byte(`{"status":"success","cart_items":[{"food_id":"a","food_name":"Apple","overall_score":90,"overall_rating":"GREAT"},{"food_id":"b","food_name":"Beef","overall_score":4,"overall_rating":"POOR"}]}`))
		case "/cart/remove":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":"error","message":"database unavailable"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	api := client.New(&config.ClientConfig{APIBaseURL: srv.URL, UserID: "default_user", Timeout: 5 * time.Second})
	n := &recordingNotifier{}
	s := NewCartScreen(api, n)

	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Items(), 2)

	assert.Error(t, s.Remove(context.Background(), "a"))
	assert.Len(t, s.Items(), 2)
	assert.Equal(t, alert{"Error", "Failed to remove item: database unavailable"}, n.last())

	s.ExpandAll()
	out := s.Render()
	assert.True(t, strings.HasPrefix(out, "2 items in cart"))
	assert.Contains(t, out, "Apple")
}
