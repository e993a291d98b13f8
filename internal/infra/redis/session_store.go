package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"quiz-session-service/internal/domain"
)

// SessionStore keeps per-user quiz state in Redis, one key per field:
//
//	quiz:{userID}:current_question
//	quiz:{userID}:current_answer
//	quiz:{userID}:total
//	quiz:{userID}:correct
//
// The answer key is written last on set and removed first on clear, so the
// question/answer pair is never observed half-set: a reader that finds both
// keys has a consistent active question.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) key(userID, field string) string {
	return "quiz:" + userID + ":" + field
}

func (s *SessionStore) GetActive(ctx context.Context, userID string) (string, string, bool, error) {
	question, err := s.client.Get(ctx, s.key(userID, "current_question")).Result()
	if err == redis.Nil {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, unavailable("get current question", err)
	}
	answer, err := s.client.Get(ctx, s.key(userID, "current_answer")).Result()
	if err == redis.Nil {
		// Half-set pair reads as no active question.
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, unavailable("get current answer", err)
	}
	return question, answer, true, nil
}

func (s *SessionStore) SetActive(ctx context.Context, userID, question, answer string) error {
	if err := s.client.Set(ctx, s.key(userID, "current_question"), question, 0).Err(); err != nil {
		return unavailable("set current question", err)
	}
	if err := s.client.Set(ctx, s.key(userID, "current_answer"), answer, 0).Err(); err != nil {
		return unavailable("set current answer", err)
	}
	return nil
}

func (s *SessionStore) ClearActive(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID, "current_answer")).Err(); err != nil {
		return unavailable("clear current answer", err)
	}
	if err := s.client.Del(ctx, s.key(userID, "current_question")).Err(); err != nil {
		return unavailable("clear current question", err)
	}
	return nil
}

func (s *SessionStore) IncrTotal(ctx context.Context, userID string) (int64, error) {
	return s.incr(ctx, s.key(userID, "total"))
}

func (s *SessionStore) IncrCorrect(ctx context.Context, userID string) (int64, error) {
	return s.incr(ctx, s.key(userID, "correct"))
}

// incr is an atomic increment with absent keys counting from 0. A corrupted
// non-numeric value is discarded and the counter restarts from 0 rather than
// wedging the user forever.
func (s *SessionStore) incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err == nil {
		return n, nil
	}
	if !isNotInteger(err) {
		return 0, unavailable("incr "+key, err)
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return 0, unavailable("reset "+key, err)
	}
	n, err = s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, unavailable("incr "+key, err)
	}
	return n, nil
}

func (s *SessionStore) Score(ctx context.Context, userID string) (int64, int64, error) {
	correct, err := s.counter(ctx, s.key(userID, "correct"))
	if err != nil {
		return 0, 0, err
	}
	total, err := s.counter(ctx, s.key(userID, "total"))
	if err != nil {
		return 0, 0, err
	}
	return correct, total, nil
}

// counter reads a counter key; missing or non-numeric values read as 0.
func (s *SessionStore) counter(ctx context.Context, key string) (int64, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, unavailable("get "+key, err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, op, err)
}

func isNotInteger(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not an integer")
}
