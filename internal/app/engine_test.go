package app_test

import (
	"context"
	"errors"
	"testing"

	"quiz-session-service/internal/app"
	"quiz-session-service/internal/domain"
	"quiz-session-service/internal/infra/memory"
)

func TestGiveUpOnFreshUser(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	if _, err := engine.GiveUp(ctx, "u1"); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion, got %v", err)
	}
	assertScore(t, engine, "u1", 0, 0)
}

func TestCorrectAnswerFlow(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	prompt, err := engine.NewQuestion(ctx, "u1")
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if prompt == "" {
		t.Fatalf("expected a prompt")
	}

	result, err := engine.SubmitAnswer(ctx, "u1", "судак.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct {
		t.Fatalf("expected correct verdict, got %+v", result)
	}
	assertScore(t, engine, "u1", 1, 1)
}

func TestIncorrectAnswerConsumesQuestion(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
		t.Fatalf("new question: %v", err)
	}
	result, err := engine.SubmitAnswer(ctx, "u1", "неверно")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct {
		t.Fatalf("expected incorrect verdict")
	}
	if result.CorrectAnswer != "Судак" {
		t.Fatalf("expected revealed answer Судак, got %q", result.CorrectAnswer)
	}
	assertScore(t, engine, "u1", 0, 1)

	// The wrong attempt consumed the question.
	if _, err := engine.SubmitAnswer(ctx, "u1", "судак"); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion, got %v", err)
	}
	assertScore(t, engine, "u1", 0, 1)
}

func TestGiveUpRevealsAnswer(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
		t.Fatalf("new question: %v", err)
	}
	answer, err := engine.GiveUp(ctx, "u1")
	if err != nil {
		t.Fatalf("give up: %v", err)
	}
	if answer != "Судак" {
		t.Fatalf("expected Судак, got %q", answer)
	}
	assertScore(t, engine, "u1", 0, 1)

	if _, err := engine.GiveUp(ctx, "u1"); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion on second give up, got %v", err)
	}
	assertScore(t, engine, "u1", 0, 1)
}

func TestEmptyNormalizedAnswerNeverCorrect(t *testing.T) {
	ctx := context.Background()
	// Pathological stored answer that also normalizes to "".
	engine := newTestEngine(t, "?!")

	if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
		t.Fatalf("new question: %v", err)
	}
	result, err := engine.SubmitAnswer(ctx, "u1", "!!!")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct {
		t.Fatalf("vacuous empty-vs-empty match must not be correct")
	}
	assertScore(t, engine, "u1", 0, 1)
}

func TestNewQuestionReplacesActiveWithoutPenalty(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	for i := 0; i < 3; i++ {
		if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
			t.Fatalf("new question: %v", err)
		}
	}
	// Replacing the active question costs nothing.
	assertScore(t, engine, "u1", 0, 0)

	if _, err := engine.GiveUp(ctx, "u1"); err != nil {
		t.Fatalf("give up: %v", err)
	}
	assertScore(t, engine, "u1", 0, 1)
}

func TestUsersAreIndependent(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
		t.Fatalf("new question: %v", err)
	}
	if _, err := engine.SubmitAnswer(ctx, "u2", "судак"); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("u2 has no question, got %v", err)
	}
	if _, err := engine.SubmitAnswer(ctx, "u1", "судак"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	assertScore(t, engine, "u1", 1, 1)
	assertScore(t, engine, "u2", 0, 0)
}

func TestCorrectNeverExceedsTotal(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "Судак")

	attempts := []string{"судак.", "мимо", "", "СУДАК", "???"}
	for _, attempt := range attempts {
		if _, err := engine.NewQuestion(ctx, "u1"); err != nil {
			t.Fatalf("new question: %v", err)
		}
		if _, err := engine.SubmitAnswer(ctx, "u1", attempt); err != nil {
			t.Fatalf("submit %q: %v", attempt, err)
		}
		score, err := engine.Score(ctx, "u1")
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if score.Correct > score.Total {
			t.Fatalf("invariant violated: %+v", score)
		}
	}
	assertScore(t, engine, "u1", 2, 5)
}

func newTestEngine(t *testing.T, answer string) *app.QuizEngine {
	t.Helper()
	bank, err := app.NewQuestionBank([]domain.Question{
		{Prompt: "Как называется самая крупная рыба Волги?", Answer: answer},
	})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	return app.NewQuizEngine(bank, memory.NewSessionStore())
}

func assertScore(t *testing.T, engine *app.QuizEngine, userID string, correct, total int64) {
	t.Helper()
	score, err := engine.Score(context.Background(), userID)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score.Correct != correct || score.Total != total {
		t.Fatalf("expected score (%d, %d), got (%d, %d)", correct, total, score.Correct, score.Total)
	}
}
