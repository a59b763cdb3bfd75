package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

const constitution = `
# Food Sustainability Scoring System

## Criteria Weights (Total = 100%)
1. Carbon Footprint: 25%
2. Processing Level: 20%
3. Artificial Ingredients: 20%
4. Organic/Certifications: 15%
5. Transportation/Origin: 15%
6. Food Category Impact: 5%

## Scoring Scales

### Carbon Footprint (25% weight)
- 100 points: <=1.0 kg CO2e/kg (vegetables, fruits)
- 75 points: 1.1-3.0 kg CO2e/kg (grains, dairy, eggs)
- 50 points: 3.1-8.0 kg CO2e/kg (chicken, pork)
- 25 points: 8.1-20.0 kg CO2e/kg (cheese, processed foods)
- 0 points: >20.0 kg CO2e/kg (beef, lamb)

### Processing Level (20% weight)
- 100 points: Minimal (1-3 ingredients)
- 75 points: Light (4-8 ingredients)
- 50 points: Moderate (9-15 ingredients)
- 25 points: High (16-25 ingredients)
- 0 points: Ultra-processed (25+ ingredients)

### Artificial Ingredients (20% weight)
- 100 points: No artificial ingredients
- 75-99 points: 1 minor artificial ingredient
- 50-74 points: 2-3 artificial ingredients
- 25-49 points: 4-6 artificial ingredients
- 0-24 points: 7+ artificial ingredients

### Organic/Certifications (15% weight)
- 100 points: Multiple certifications (Organic + Fair Trade)
- 85 points: USDA Organic
- 70 points: Made with Organic
- 60 points: Single certification (Non-GMO, Fair Trade)
- 40 points: Animal welfare only
- 20 points: Minor claims ("Natural")
- 0 points: No certifications

### Transportation/Origin (15% weight)
- 100 points: Local (<100 miles)
- 80 points: Regional (100-500 miles)
- 60 points: National (500-1,500 miles)
- 30 points: International (1,500+ miles)
- 0 points: Long-distance air freight

### Food Category Impact (5% weight)
- 100 points: Vegetables, fruits, legumes
- 80 points: Grains, nuts
- 60 points: Dairy alternatives, eggs
- 40 points: Dairy products, fish
- 20 points: Poultry, pork
- 0 points: Beef, lamb

## Final Rating Scale
- 75-100%: 🌟 GREAT - Highly sustainable
- 50-74%: ✅ GOOD - Reasonably sustainable
- 25-49%: ⚠️ AVERAGE - Some concerns
- 0-24%: ❌ POOR - Low sustainability
`

func buildJudgePrompt(query string) string {
	return fmt.Sprintf(`
You are a sustainability judge applying this constitution to evaluate food items:

%s

Evaluate this food item: %q

Return your analysis STRICTLY in this JSON format:
{
	"food_name": "exact product name",
	"overall_score": <number 0-100, weighted by the criteria above>,
	"overall_rating": "GREAT|GOOD|AVERAGE|POOR",
	"rating_emoji": "🌟|✅|⚠️|❌",
	"confidence": <number 0-1>,
	"breakdown": {
		"carbon_footprint": {"score": <0-100>, "reasoning": "brief explanation"},
		"processing_level": {"score": <0-100>, "reasoning": "brief explanation"},
		"artificial_ingredients": {"score": <0-100>, "reasoning": "brief explanation"},
		"organic_certifications": {"score": <0-100>, "reasoning": "brief explanation"},
		"transportation_origin": {"score": <0-100>, "reasoning": "brief explanation"},
		"food_category": {"score": <0-100>, "reasoning": "brief explanation"}
	},
	"rationale": "2-3 sentence summary of why this food got this rating",
	"recommendation": "specific advice for the consumer",
	"data_gaps": ["missing information that affected confidence"]
}

Be specific about the product. If the query is vague (like "chicken"), make reasonable assumptions about a common variant.
`, constitution, query)
}

func buildSummaryPrompt(items []dto.FoodJudgment, average float64, distribution map[string]int) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		name := it.FoodName
		if name == "" {
			name = "Unknown"
		}
		names = append(names, fmt.Sprintf("%s (%g%%)", name, it.OverallScore))
	}
	counts := make([]string, 0, len(dto.Ratings))
	for _, r := range dto.Ratings {
		counts = append(counts, fmt.Sprintf("%s: %d", r, distribution[r]))
	}

	return fmt.Sprintf(`
Summarize the sustainability of this grocery cart:

Items: %s

Average Score: %.1f%%
Rating Distribution: %s

Provide:
1. A 2-sentence overall assessment
2. 2-3 specific recommendations for improvement, one per line, each starting with "-"

Keep it encouraging but honest.
`, strings.Join(names, ", "), average, strings.Join(counts, ", "))
}
