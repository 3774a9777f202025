package service

import (
	"context"
	"strings"

	"tinkerlab/internal/assistant"
	"tinkerlab/internal/chat"
	"tinkerlab/internal/middleware"
	"tinkerlab/internal/models"
	"tinkerlab/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// AssistantService owns the conversational search pipeline: per-session
// append-only transcripts, one remote call per submitted query, and a fixed
// fallback turn when the remote function cannot answer.
type AssistantService struct {
	client   assistant.Client
	sessions *chat.Store
}

func NewAssistantService(client assistant.Client, sessions *chat.Store) *AssistantService {
	return &AssistantService{client: client, sessions: sessions}
}

// StartSession creates a session. A non-blank initial query, as carried over
// from a search box on another page, is submitted immediately so the first
// exchange is already on the transcript when the page renders.
func (s *AssistantService) StartSession(ctx context.Context, initialQuery string) (*chat.Session, error) {
	session := s.sessions.Create()
	if strings.TrimSpace(initialQuery) != "" {
		if _, err := s.Submit(ctx, session.ID, initialQuery); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Transcript returns the current turns of a session.
func (s *AssistantService) Transcript(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, models.NewNotFoundError("session", sessionID)
	}
	return session.Turns(), nil
}

// EndSession drops a session and its transcript.
func (s *AssistantService) EndSession(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// Submit runs one query through the pipeline. A blank query is a no-op and
// returns the transcript unchanged. Otherwise the user turn is appended
// first, the query is logged to analytics without blocking, and the remote
// reply, or the fixed fallback on transport failure, is appended after it.
// Transport failures are absorbed into the transcript rather than returned.
func (s *AssistantService) Submit(ctx context.Context, sessionID, query string) ([]chat.Turn, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, models.NewNotFoundError("session", sessionID)
	}

	// Trimming is only for the blank check; the query itself is passed
	// through exactly as typed.
	if strings.TrimSpace(query) == "" {
		return session.Turns(), nil
	}

	// One submission in flight per session; concurrent submits queue here.
	// Transcript reads stay responsive while the remote call runs.
	session.BeginSubmit()
	defer session.EndSubmit()

	session.Append(chat.NewUserTurn(query))

	go func(ctx context.Context) {
		if err := s.client.LogQuery(ctx, query); err != nil {
			middleware.Logger.DebugContext(ctx, "analytics log failed", "error", err)
		}
	}(context.WithoutCancel(ctx))

	span, ctx := observability.NewSpan(ctx, "assistant.ask")
	span.AddAttributes(attribute.Int("query.length", len(query)))
	reply, err := s.client.Ask(ctx, query)
	span.SetError(err)
	span.End()
	if err != nil {
		middleware.AssistantRequests.WithLabelValues("transport_error").Inc()
		middleware.Logger.WarnContext(ctx, "assistant unreachable", "error", err)
		session.Append(chat.NewAssistantTurn(chat.FallbackText, true))
		return session.Turns(), nil
	}

	isErr := chat.ReplyIsError(reply.Status, reply.Text)
	if isErr {
		middleware.AssistantRequests.WithLabelValues("content_error").Inc()
	} else {
		middleware.AssistantRequests.WithLabelValues("ok").Inc()
	}
	session.Append(chat.NewAssistantTurn(reply.Text, isErr))

	return session.Turns(), nil
}
