package dto

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	RatingGreat   = "GREAT"
	RatingGood    = "GOOD"
	RatingAverage = "AVERAGE"
	RatingPoor    = "POOR"
	RatingError   = "ERROR"
)

// Ratings lists the scale from best to worst.
var Ratings = []string{RatingGreat, RatingGood, RatingAverage, RatingPoor}

var ratingEmoji = map[string]string{
	RatingGreat:   "🌟",
	RatingGood:    "✅",
	RatingAverage: "⚠️",
	RatingPoor:    "❌",
	RatingError:   "❌",
}

var ratingColor = map[string]string{
	RatingGreat:   "#4CAF50",
	RatingGood:    "#8BC34A",
	RatingAverage: "#FF9800",
	RatingPoor:    "#F44336",
}

const unknownRatingColor = "#666"

// RatingForScore maps a 0-100 score onto the final rating scale.
func RatingForScore(score float64) string {
	switch {
	case score >= 75:
		return RatingGreat
	case score >= 50:
		return RatingGood
	case score >= 25:
		return RatingAverage
	default:
		return RatingPoor
	}
}

func EmojiForRating(rating string) string {
	return ratingEmoji[rating]
}

func ColorForRating(rating string) string {
	if c, ok := ratingColor[rating]; ok {
		return c
	}
	return unknownRatingColor
}

// Category is a breakdown key with its display label.
type Category struct {
	Key   string
	Label string
}

// Categories is the display order of a breakdown.
var Categories = []Category{
	{Key: "carbon_footprint", Label: "Carbon Footprint"},
	{Key: "processing_level", Label: "Processing Level"},
	{Key: "artificial_ingredients", Label: "Artificial Ingredients"},
	{Key: "organic_certifications", Label: "Certifications"},
	{Key: "transportation_origin", Label: "Transportation"},
	{Key: "food_category", Label: "Food Category"},
}

// CategoryLabel returns the display label of a breakdown key. Keys outside
// the constitution are title-cased ("water_use" -> "Water Use").
func CategoryLabel(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Label
		}
	}
	// a Caser keeps state, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
