package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"quiz-session-service/internal/app"
	"quiz-session-service/internal/domain"
)

// WSHandler is the reference transport adapter: it maps websocket messages
// onto the four engine operations and renders the results. All formatting
// lives here; the engine only ever sees a user id and optional text.
type WSHandler struct {
	engine   *app.QuizEngine
	upgrader websocket.Upgrader
}

func NewWSHandler(engine *app.QuizEngine) *WSHandler {
	return &WSHandler{
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type questionPayload struct {
	Prompt string `json:"prompt"`
}

type revealedPayload struct {
	CorrectAnswer string `json:"correctAnswer"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the quiz
// engine. Messages on one connection are handled sequentially, which also
// serializes operations for that user.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		h.handle(r.Context(), conn, userID, inbound)
	}
}

func (h *WSHandler) handle(ctx context.Context, conn *websocket.Conn, userID string, inbound inboundMessage) {
	switch inbound.Type {
	case "question":
		prompt, err := h.engine.NewQuestion(ctx, userID)
		if err != nil {
			h.writeError(conn, err)
			return
		}
		_ = conn.WriteJSON(outboundMessage[questionPayload]{Type: "question", Payload: questionPayload{Prompt: prompt}})
	case "give_up":
		answer, err := h.engine.GiveUp(ctx, userID)
		if errors.Is(err, domain.ErrNoActiveQuestion) {
			_ = conn.WriteJSON(outboundMessage[struct{}]{Type: "noActiveQuestion"})
			return
		}
		if err != nil {
			h.writeError(conn, err)
			return
		}
		_ = conn.WriteJSON(outboundMessage[revealedPayload]{Type: "answerRevealed", Payload: revealedPayload{CorrectAnswer: answer}})
	case "answer":
		result, err := h.engine.SubmitAnswer(ctx, userID, inbound.Text)
		if errors.Is(err, domain.ErrNoActiveQuestion) {
			_ = conn.WriteJSON(outboundMessage[struct{}]{Type: "noActiveQuestion"})
			return
		}
		if err != nil {
			h.writeError(conn, err)
			return
		}
		_ = conn.WriteJSON(outboundMessage[domain.AnswerResult]{Type: "answerResult", Payload: result})
	case "score":
		score, err := h.engine.Score(ctx, userID)
		if err != nil {
			h.writeError(conn, err)
			return
		}
		_ = conn.WriteJSON(outboundMessage[domain.Score]{Type: "score", Payload: score})
	default:
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
	}
}

func (h *WSHandler) writeError(conn *websocket.Conn, err error) {
	msg := err.Error()
	if errors.Is(err, domain.ErrBackendUnavailable) {
		log.Printf("session backend error: %v", err)
		msg = "service temporarily unavailable, try again"
	}
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}})
}
