package usecase

import "context"

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) GenerateText(_ context.Context, prompt string, _ int32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}
