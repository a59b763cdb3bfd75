package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// jsonObjectPattern is greedy: first '{' to last '}', across lines.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject pulls the JSON object out of an LLM reply that may wrap
// it in prose or markdown fences.
func ExtractJSONObject(text string) (string, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", fmt.Errorf("could not find JSON in LLM response")
	}
	if !gjson.Valid(match) {
		return "", fmt.Errorf("could not parse JSON from LLM response")
	}
	return match, nil
}

var recommendationPattern = regexp.MustCompile(`^[\d\-*]`)

// ExtractRecommendations returns the trimmed lines of text that start like a
// list item: a digit, '-' or '*'.
func ExtractRecommendations(text string) []string {
	recommendations := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if recommendationPattern.MatchString(line) {
			recommendations = append(recommendations, line)
		}
	}
	return recommendations
}
