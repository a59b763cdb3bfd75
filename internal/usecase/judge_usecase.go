package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/repository"
	"github.com/fadilmartias/sustainability-judge/internal/service"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/google/uuid"
)

const judgeMaxTokens = 1000

type JudgeUsecase struct {
	llm       service.LLMServiceInterface
	embedder  service.EmbeddingServiceInterface
	history   repository.HistoryRepository
	threshold float64
	newFoodID func() string
}

// NewJudgeUsecase wires the evaluator. embedder may be nil; similar-query
// reuse is also off when threshold is not positive.
func NewJudgeUsecase(llm service.LLMServiceInterface, embedder service.EmbeddingServiceInterface, history repository.HistoryRepository, threshold float64) *JudgeUsecase {
	return &JudgeUsecase{
		llm:       llm,
		embedder:  embedder,
		history:   history,
		threshold: threshold,
		newFoodID: newFoodID,
	}
}

func newFoodID() string {
	return "food_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// EvaluateFood judges a free-text food query. LLM failures do not fail the
// call: they produce an ERROR judgment the client can still display.
func (uc *JudgeUsecase) EvaluateFood(ctx context.Context, userID, query string) (dto.FoodJudgment, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.FoodJudgment{}, ErrFoodQueryRequired
	}

	embedding := uc.embed(ctx, query)

	judgment, reused := uc.lookupSimilar(ctx, query, embedding)
	if !reused {
		judgment = uc.evaluate(ctx, query)
	}
	judgment.FoodID = uc.newFoodID()
	judgment.Query = query

	if judgment.OverallRating != dto.RatingError {
		if err := uc.history.Append(ctx, userID, judgment, embedding); err != nil {
			log.Printf("Could not record history for %s: %v", userID, err)
		}
	}
	return judgment, nil
}

func (uc *JudgeUsecase) embed(ctx context.Context, query string) []float32 {
	if uc.embedder == nil || uc.threshold <= 0 {
		return nil
	}
	emb, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("Embedding failed, evaluating without reuse: %v", err)
		return nil
	}
	return emb
}

func (uc *JudgeUsecase) lookupSimilar(ctx context.Context, query string, embedding []float32) (dto.FoodJudgment, bool) {
	if len(embedding) == 0 {
		return dto.FoodJudgment{}, false
	}
	cached, dist, err := uc.history.Nearest(ctx, embedding)
	if err != nil {
		log.Printf("History lookup failed: %v", err)
		return dto.FoodJudgment{}, false
	}
	if cached == nil || dist > uc.threshold {
		return dto.FoodJudgment{}, false
	}
	log.Printf("Reusing judgment %q for %q (distance %.4f)", cached.FoodName, query, dist)
	return *cached, true
}

func (uc *JudgeUsecase) evaluate(ctx context.Context, query string) dto.FoodJudgment {
	text, err := uc.llm.GenerateText(ctx, buildJudgePrompt(query), judgeMaxTokens)
	if err != nil {
		log.Printf("Evaluation of %q failed: %v", query, err)
		return errorJudgment(query, err)
	}
	judgment, err := parseJudgment(text, query)
	if err != nil {
		log.Printf("Evaluation of %q returned unusable output: %v", query, err)
		return errorJudgment(query, err)
	}
	return judgment
}

func parseJudgment(text, query string) (dto.FoodJudgment, error) {
	raw, err := util.ExtractJSONObject(text)
	if err != nil {
		return dto.FoodJudgment{}, err
	}
	var j dto.FoodJudgment
	if err := json.Unmarshal([]byte(raw), &j); err != nil {
		return dto.FoodJudgment{}, fmt.Errorf("decode judgment: %w", err)
	}
	// model chatter outside the judgment shape is not kept
	j.Extra = nil
	normalizeJudgment(&j, query)
	return j, nil
}

func normalizeJudgment(j *dto.FoodJudgment, query string) {
	if strings.TrimSpace(j.FoodName) == "" {
		j.FoodName = query
	}
	j.OverallScore = clampScore(j.OverallScore)
	j.OverallRating = strings.ToUpper(strings.TrimSpace(j.OverallRating))
	if !slices.Contains(dto.Ratings, j.OverallRating) {
		j.OverallRating = dto.RatingForScore(j.OverallScore)
	}
	if j.RatingEmoji == "" {
		j.RatingEmoji = dto.EmojiForRating(j.OverallRating)
	}
	j.Confidence = math.Max(0, math.Min(1, j.Confidence))
	if j.Breakdown == nil {
		j.Breakdown = map[string]dto.CategoryScore{}
	}
	for k, v := range j.Breakdown {
		v.Score = clampScore(v.Score)
		j.Breakdown[k] = v
	}
	if j.DataGaps == nil {
		j.DataGaps = []string{}
	}
}

func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}

func errorJudgment(query string, err error) dto.FoodJudgment {
	return dto.FoodJudgment{
		FoodName:       query,
		OverallScore:   0,
		OverallRating:  dto.RatingError,
		RatingEmoji:    dto.EmojiForRating(dto.RatingError),
		Confidence:     0,
		Breakdown:      map[string]dto.CategoryScore{},
		Rationale:      fmt.Sprintf("Error occurred during evaluation: %v", err),
		Recommendation: "Unable to evaluate this food item",
		DataGaps:       []string{"Error in processing"},
	}
}
