package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"quiz-session-service/internal/domain"
)

// QuestionLoader fetches question content from a backing source (JSON file,
// Postgres, static fixtures).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionBank is an immutable collection of questions with uniform random
// selection. It is built once at startup and never reloaded.
type QuestionBank struct {
	questions []domain.Question

	mu  sync.Mutex
	rnd *rand.Rand
}

// LoadQuestionBank builds the bank from a loader. A loader failure or an
// empty source is fatal to startup.
func LoadQuestionBank(ctx context.Context, loader QuestionLoader) (*QuestionBank, error) {
	questions, err := loader.LoadQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return NewQuestionBank(questions)
}

func NewQuestionBank(questions []domain.Question) (*QuestionBank, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyBank
	}
	owned := make([]domain.Question, len(questions))
	copy(owned, questions)
	return &QuestionBank{
		questions: owned,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// PickRandom returns a uniformly random question. Safe for concurrent use.
func (b *QuestionBank) PickRandom() domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.questions[b.rnd.Intn(len(b.questions))]
}

// Len reports the number of questions in the bank.
func (b *QuestionBank) Len() int {
	return len(b.questions)
}
