package dto

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// CategoryScore is one line of a judgment breakdown.
type CategoryScore struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// FoodJudgment is the sustainability evaluation of a single food item. Cart
// and favorites entries have the same shape and are keyed by FoodID.
type FoodJudgment struct {
	FoodID         string                   `json:"food_id"`
	FoodName       string                   `json:"food_name"`
	Query          string                   `json:"query,omitempty"`
	OverallScore   float64                  `json:"overall_score"`
	OverallRating  string                   `json:"overall_rating"`
	RatingEmoji    string                   `json:"rating_emoji"`
	Confidence     float64                  `json:"confidence"`
	Breakdown      map[string]CategoryScore `json:"breakdown"`
	Rationale      string                   `json:"rationale"`
	Recommendation string                   `json:"recommendation"`
	DataGaps       []string                 `json:"data_gaps"`

	// Extra holds fields this version does not know about so they survive
	// a load and save round trip.
	Extra map[string]json.RawMessage `json:"-"`
}

var judgmentFields = map[string]bool{
	"food_id": true, "food_name": true, "query": true, "overall_score": true,
	"overall_rating": true, "rating_emoji": true, "confidence": true,
	"breakdown": true, "rationale": true, "recommendation": true, "data_gaps": true,
}

// UnmarshalJSON accepts numbers sent as strings and keeps unknown fields in
// Extra.
func (j *FoodJudgment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	type alias FoodJudgment
	aux := struct {
		*alias
		OverallScore looseNumber `json:"overall_score"`
		Confidence   looseNumber `json:"confidence"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	j.OverallScore = float64(aux.OverallScore)
	j.Confidence = float64(aux.Confidence)

	j.Extra = nil
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if !judgmentFields[key.Str] {
			if j.Extra == nil {
				j.Extra = map[string]json.RawMessage{}
			}
			j.Extra[key.Str] = json.RawMessage(value.Raw)
		}
		return true
	})
	return nil
}

// MarshalJSON writes the known fields followed by Extra in key order.
func (j FoodJudgment) MarshalJSON() ([]byte, error) {
	type alias FoodJudgment
	data, err := json.Marshal(alias(j))
	if err != nil || len(j.Extra) == 0 {
		return data, err
	}

	keys := make([]string, 0, len(j.Extra))
	for k := range j.Extra {
		if !judgmentFields[k] {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, k := range keys {
		name, _ := json.Marshal(k)
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		if !json.Valid(j.Extra[k]) {
			buf.WriteString("null")
			continue
		}
		buf.Write(j.Extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *CategoryScore) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	type alias CategoryScore
	aux := struct {
		*alias
		Score looseNumber `json:"score"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Score = float64(aux.Score)
	return nil
}

// looseNumber decodes a JSON number, a numeric string or null. Anything else
// reads as zero.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	switch r.Type {
	case gjson.Number:
		*n = looseNumber(r.Float())
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			f = 0
		}
		*n = looseNumber(f)
	default:
		*n = 0
	}
	return nil
}

type ChartSlice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Summary aggregates the judgments currently in a cart.
type Summary struct {
	AverageScore       float64        `json:"average_score"`
	TotalItems         int            `json:"total_items"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	ChartData          []ChartSlice   `json:"chart_data"`
	SummaryText        string         `json:"summary_text"`
	Recommendations    []string       `json:"recommendations"`
}

type UserStats struct {
	CartItems        int     `json:"cart_items"`
	FavoriteItems    int     `json:"favorite_items"`
	TotalEvaluations int64   `json:"total_evaluations"`
	AverageCartScore float64 `json:"average_cart_score"`
}
