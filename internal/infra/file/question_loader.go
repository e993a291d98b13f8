package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quiz-session-service/internal/domain"
)

// QuestionLoader reads the question bank from a JSON file holding an array of
// {"question": ..., "answer": ...} records.
type QuestionLoader struct {
	path string
}

func NewQuestionLoader(path string) *QuestionLoader {
	return &QuestionLoader{path: path}
}

func (l *QuestionLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", l.path, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("questions file %s: %w", l.path, domain.ErrEmptyBank)
	}
	for i, q := range questions {
		if q.Prompt == "" || q.Answer == "" {
			return nil, fmt.Errorf("questions file %s: record %d is missing question or answer", l.path, i)
		}
	}
	return questions, nil
}
