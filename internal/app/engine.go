package app

import (
	"context"

	"quiz-session-service/internal/domain"
)

// SessionStore abstracts the per-user persisted quiz state (in-memory, Redis).
// A question is active iff both the question and answer fields are set; every
// implementation must treat either field missing as "no active question" and
// must write the answer last on set and remove it first on clear.
type SessionStore interface {
	GetActive(ctx context.Context, userID string) (question, answer string, ok bool, err error)
	SetActive(ctx context.Context, userID, question, answer string) error
	ClearActive(ctx context.Context, userID string) error
	IncrTotal(ctx context.Context, userID string) (int64, error)
	IncrCorrect(ctx context.Context, userID string) (int64, error)
	Score(ctx context.Context, userID string) (correct, total int64, err error)
}

// QuizEngine contains the core quiz use cases. Each user is either idle or
// awaiting an answer to exactly one active question; the engine re-reads the
// store on every call and caches nothing across calls.
type QuizEngine struct {
	bank  *QuestionBank
	store SessionStore
}

func NewQuizEngine(bank *QuestionBank, store SessionStore) *QuizEngine {
	return &QuizEngine{bank: bank, store: store}
}

// NewQuestion picks a random question, makes it the user's active question and
// returns its prompt. An already active question is silently replaced without
// touching the counters.
func (e *QuizEngine) NewQuestion(ctx context.Context, userID string) (string, error) {
	q := e.bank.PickRandom()
	if err := e.store.SetActive(ctx, userID, q.Prompt, q.Answer); err != nil {
		return "", err
	}
	return q.Prompt, nil
}

// GiveUp reveals the stored answer and closes the active question, counting it
// as an attempt. Returns domain.ErrNoActiveQuestion if nothing is outstanding;
// in that case the counters stay untouched.
func (e *QuizEngine) GiveUp(ctx context.Context, userID string) (string, error) {
	_, answer, ok, err := e.store.GetActive(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNoActiveQuestion
	}
	// Count the attempt before clearing: a crash in between leaves a stray
	// active question, never a lost counter.
	if _, err := e.store.IncrTotal(ctx, userID); err != nil {
		return "", err
	}
	if err := e.store.ClearActive(ctx, userID); err != nil {
		return "", err
	}
	return answer, nil
}

// SubmitAnswer judges text against the user's active question. One submission
// consumes the question regardless of the verdict. A submission that
// normalizes to the empty string is never correct.
func (e *QuizEngine) SubmitAnswer(ctx context.Context, userID, text string) (domain.AnswerResult, error) {
	_, answer, ok, err := e.store.GetActive(ctx, userID)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	if !ok {
		return domain.AnswerResult{}, domain.ErrNoActiveQuestion
	}

	if _, err := e.store.IncrTotal(ctx, userID); err != nil {
		return domain.AnswerResult{}, err
	}

	submitted := Normalize(text)
	correct := submitted != "" && submitted == Normalize(answer)
	if correct {
		if _, err := e.store.IncrCorrect(ctx, userID); err != nil {
			return domain.AnswerResult{}, err
		}
	}

	if err := e.store.ClearActive(ctx, userID); err != nil {
		return domain.AnswerResult{}, err
	}
	return domain.AnswerResult{Correct: correct, CorrectAnswer: answer}, nil
}

// Score returns the user's cumulative tally; unknown users read as (0, 0).
func (e *QuizEngine) Score(ctx context.Context, userID string) (domain.Score, error) {
	correct, total, err := e.store.Score(ctx, userID)
	if err != nil {
		return domain.Score{}, err
	}
	return domain.Score{Correct: correct, Total: total}, nil
}
