package usecase

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/repository"
	"github.com/fadilmartias/sustainability-judge/internal/service"
	"github.com/fadilmartias/sustainability-judge/internal/util"
)

const summaryMaxTokens = 300

var defaultRecommendations = []string{
	"Consider adding more plant-based options",
	"Look for organic alternatives",
}

type SummaryUsecase struct {
	llm   service.LLMServiceInterface
	lists repository.ListRepository
}

func NewSummaryUsecase(llm service.LLMServiceInterface, lists repository.ListRepository) *SummaryUsecase {
	return &SummaryUsecase{llm: llm, lists: lists}
}

// Summary summarizes the user's current cart.
func (uc *SummaryUsecase) Summary(ctx context.Context, userID string) (dto.Summary, error) {
	items, err := uc.lists.List(ctx, userID, repository.ListCart)
	if err != nil {
		return dto.Summary{}, fmt.Errorf("load cart: %w", err)
	}
	return uc.GenerateSummary(ctx, items), nil
}

func (uc *SummaryUsecase) GenerateSummary(ctx context.Context, items []dto.FoodJudgment) dto.Summary {
	distribution := make(map[string]int, len(dto.Ratings))
	for _, r := range dto.Ratings {
		distribution[r] = 0
	}

	if len(items) == 0 {
		return dto.Summary{
			AverageScore:       0,
			TotalItems:         0,
			RatingDistribution: distribution,
			ChartData:          []dto.ChartSlice{},
			SummaryText:        "Your cart is empty.",
			Recommendations:    []string{},
		}
	}

	var total float64
	for _, it := range items {
		total += it.OverallScore
		rating := it.OverallRating
		if rating == "" {
			rating = dto.RatingPoor
		}
		if _, ok := distribution[rating]; ok {
			distribution[rating]++
		}
	}
	average := total / float64(len(items))

	chart := make([]dto.ChartSlice, 0, len(dto.Ratings))
	for _, r := range dto.Ratings {
		chart = append(chart, dto.ChartSlice{Name: r, Count: distribution[r], Color: dto.ColorForRating(r)})
	}

	text, err := uc.llm.GenerateText(ctx, buildSummaryPrompt(items, average, distribution), summaryMaxTokens)
	var recommendations []string
	if err != nil {
		log.Printf("Summary generation failed, using fallback: %v", err)
		text = fmt.Sprintf("Your cart has %d items with an average sustainability score of %.1f%%.", len(items), average)
		recommendations = append([]string{}, defaultRecommendations...)
	} else {
		recommendations = util.ExtractRecommendations(text)
	}

	return dto.Summary{
		AverageScore:       math.Round(average*10) / 10,
		TotalItems:         len(items),
		RatingDistribution: distribution,
		ChartData:          chart,
		SummaryText:        text,
		Recommendations:    recommendations,
	}
}
