package app

import (
	"context"
	"errors"
	"testing"

	"quiz-session-service/internal/domain"
)

func TestNewQuestionBankRejectsEmpty(t *testing.T) {
	if _, err := NewQuestionBank(nil); !errors.Is(err, domain.ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestPickRandomCoversBank(t *testing.T) {
	questions := []domain.Question{
		{Prompt: "q1", Answer: "a1"},
		{Prompt: "q2", Answer: "a2"},
		{Prompt: "q3", Answer: "a3"},
	}
	bank, err := NewQuestionBank(questions)
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[bank.PickRandom().Prompt] = true
	}
	if len(seen) != len(questions) {
		t.Fatalf("expected all %d questions to appear, saw %d", len(questions), len(seen))
	}
}

func TestLoadQuestionBankWrapsLoaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadQuestionBank(context.Background(), loaderFunc(func(context.Context) ([]domain.Question, error) {
		return nil, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}
}

type loaderFunc func(ctx context.Context) ([]domain.Question, error)

func (f loaderFunc) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	return f(ctx)
}
