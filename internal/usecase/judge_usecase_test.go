package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oatMilkReply = "Sure! Here you go:\n```json\n" + `{
  "food_name": "Oatly Oat Milk",
  "overall_score": 78,
  "overall_rating": "great",
  "rating_emoji": "🌟",
  "confidence": 0.8,
  "breakdown": {
    "carbon_footprint": {"score": 100, "reasoning": "Plant based"},
    "processing_level": {"score": 120, "reasoning": "Few ingredients"}
  },
  "rationale": "Low emissions.",
  "recommendation": "Pick the organic variant.",
  "data_gaps": ["Origin of oats"]
}` + "\n```"

func TestEvaluateFood_ParsesAndNormalizes(t *testing.T) {
	store := repository.NewFileStore("")
	llm := &fakeLLM{reply: oatMilkReply}
	uc := NewJudgeUsecase(llm, nil, store, 0)
	uc.newFoodID = func() string { return "food_test" }

	j, err := uc.EvaluateFood(context.Background(), "default_user", "  oat milk ")
	require.NoError(t, err)

	assert.Equal(t, "food_test", j.FoodID)
	assert.Equal(t, "oat milk", j.Query)
	assert.Equal(t, "Oatly Oat Milk", j.FoodName)
	assert.Equal(t, dto.RatingGreat, j.OverallRating)
	assert.Equal(t, float64(100), j.Breakdown["processing_level"].Score)
	assert.Equal(t, []string{"Origin of oats"}, j.DataGaps)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], `"oat milk"`)
	assert.Contains(t, llm.prompts[0], "Carbon Footprint: 25%")

	history, total, err := store.Page(context.Background(), "default_user", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "food_test", history[0].FoodID)
}

func TestEvaluateFood_DerivesMissingRating(t *testing.T) {
	uc := NewJudgeUsecase(&fakeLLM{reply: `{"overall_score": 31}`}, nil, repository.NewFileStore(""), 0)

	j, err := uc.EvaluateFood(context.Background(), "u", "white bread")
	require.NoError(t, err)
	assert.Equal(t, "white bread", j.FoodName)
	assert.Equal(t, dto.RatingAverage, j.OverallRating)
	assert.Equal(t, "⚠️", j.RatingEmoji)
	assert.NotNil(t, j.Breakdown)
	assert.NotNil(t, j.DataGaps)
	assert.Regexp(t, `^food_[0-9a-f]{12}$`, j.FoodID)
}

func TestEvaluateFood_EmptyQuery(t *testing.T) {
	uc := NewJudgeUsecase(&fakeLLM{}, nil, repository.NewFileStore(""), 0)
	_, err := uc.EvaluateFood(context.Background(), "u", "   ")
	assert.ErrorIs(t, err, ErrFoodQueryRequired)
}

func TestEvaluateFood_LLMFailureGivesErrorJudgment(t *testing.T) {
	store := repository.NewFileStore("")
	uc := NewJudgeUsecase(&fakeLLM{err: errors.New("quota exhausted")}, nil, store, 0)

	j, err := uc.EvaluateFood(context.Background(), "u", "beef")
	require.NoError(t, err)
	assert.Equal(t, dto.RatingError, j.OverallRating)
	assert.Equal(t, "❌", j.RatingEmoji)
	assert.Equal(t, float64(0), j.OverallScore)
	assert.Equal(t, "beef", j.FoodName)
	assert.Equal(t, "Error occurred during evaluation: quota exhausted", j.Rationale)
	assert.Equal(t, "Unable to evaluate this food item", j.Recommendation)
	assert.Equal(t, []string{"Error in processing"}, j.DataGaps)
	assert.NotEmpty(t, j.FoodID)

	count, _ := store.Count(context.Background(), "u")
	assert.Zero(t, count)
}

func TestEvaluateFood_UnparseableReply(t *testing.T) {
	uc := NewJudgeUsecase(&fakeLLM{reply: "I am not sure what that is."}, nil, repository.NewFileStore(""), 0)

	j, err := uc.EvaluateFood(context.Background(), "u", "mystery")
	require.NoError(t, err)
	assert.Equal(t, dto.RatingError, j.OverallRating)
	assert.Contains(t, j.Rationale, "could not find JSON")
}

func TestEvaluateFood_ReusesSimilarJudgment(t *testing.T) {
	ctx := context.Background()
	store := repository.NewFileStore("")
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"oat milk":         {1, 0, 0},
		"oat milk, carton": {0.99, 0.05, 0},
		"ribeye steak":     {0, 0, 1},
	}}
	llm := &fakeLLM{reply: oatMilkReply}
	uc := NewJudgeUsecase(llm, embedder, store, 0.2)

	first, err := uc.EvaluateFood(ctx, "u", "oat milk")
	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)

	second, err := uc.EvaluateFood(ctx, "u", "oat milk, carton")
	require.NoError(t, err)
	assert.Len(t, llm.prompts, 1, "similar query must not reach the LLM")
	assert.Equal(t, first.FoodName, second.FoodName)
	assert.NotEqual(t, first.FoodID, second.FoodID)
	assert.Equal(t, "oat milk, carton", second.Query)

	_, err = uc.EvaluateFood(ctx, "u", "ribeye steak")
	require.NoError(t, err)
	assert.Len(t, llm.prompts, 2)
}

func TestEvaluateFood_EmbeddingFailureFallsBackToLLM(t *testing.T) {
	llm := &fakeLLM{reply: oatMilkReply}
	uc := NewJudgeUsecase(llm, &fakeEmbedder{err: errors.New("boom")}, repository.NewFileStore(""), 0.2)

	j, err := uc.EvaluateFood(context.Background(), "u", "oat milk")
	require.NoError(t, err)
	assert.Equal(t, "Oatly Oat Milk", j.FoodName)
	assert.Len(t, llm.prompts, 1)
}
