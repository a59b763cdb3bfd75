package dto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingForScore(t *testing.T) {
	cases := map[float64]string{
		100:  RatingGreat,
		75:   RatingGreat,
		74.9: RatingGood,
		50:   RatingGood,
		49:   RatingAverage,
		25:   RatingAverage,
		24.9: RatingPoor,
		0:    RatingPoor,
	}
	for score, want := range cases {
		assert.Equal(t, want, RatingForScore(score), "score %v", score)
	}
}

func TestColorForRating(t *testing.T) {
	assert.Equal(t, "#4CAF50", ColorForRating(RatingGreat))
	assert.Equal(t, "#F44336", ColorForRating(RatingPoor))
	assert.Equal(t, "#666", ColorForRating(RatingError))
	assert.Equal(t, "#666", ColorForRating(""))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Certifications", CategoryLabel("organic_certifications"))
	assert.Equal(t, "Transportation", CategoryLabel("transportation_origin"))
	assert.Equal(t, "Water Use", CategoryLabel("water_use"))
}

func TestCategoryLabel_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				assert.Equal(t, "Soil Health Index", CategoryLabel("soil_health_index"))
			}
		}()
	}
	wg.Wait()
}
