package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tinkerlab/internal/assistant"
	"tinkerlab/internal/chat"
	"tinkerlab/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistantClient struct {
	reply assistant.Reply
	err   error
}

func (s *stubAssistantClient) Ask(_ context.Context, _ string) (assistant.Reply, error) {
	return s.reply, s.err
}
func (s *stubAssistantClient) LogQuery(_ context.Context, _ string) error { return nil }

type sessionResponse struct {
	SessionID string      `json:"session_id"`
	Turns     []chat.Turn `json:"turns"`
}

func newAssistantTestApp(client assistant.Client) (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{
		sessions: chat.NewStore(chat.DefaultIdleTTL),
	}
	s.assistantService = service.NewAssistantService(client, s.sessions)
	app.Post("/assistant/sessions", s.CreateAssistantSession)
	app.Get("/assistant/sessions/:id", s.GetAssistantSession)
	app.Post("/assistant/sessions/:id/messages", s.SubmitAssistantQuery)
	app.Delete("/assistant/sessions/:id", s.DeleteAssistantSession)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeSession(t *testing.T, resp *http.Response) sessionResponse {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out sessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAssistantSessionRoundTrip(t *testing.T) {
	app, _ := newAssistantTestApp(&stubAssistantClient{
		reply: assistant.Reply{Text: "Try the line follower.", Status: "ok"},
	})

	resp := postJSON(t, app, "/assistant/sessions", fiber.Map{})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeSession(t, resp)
	require.NotEmpty(t, created.SessionID)
	assert.Empty(t, created.Turns)

	resp = postJSON(t, app, "/assistant/sessions/"+created.SessionID+"/messages",
		fiber.Map{"query": "beginner robotics"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	after := decodeSession(t, resp)
	require.Len(t, after.Turns, 2)
	assert.Equal(t, chat.RoleUser, after.Turns[0].Role)
	assert.Equal(t, "Try the line follower.", after.Turns[1].Content)
}

func TestCreateAssistantSession_WithInitialQuery(t *testing.T) {
	app, _ := newAssistantTestApp(&stubAssistantClient{
		reply: assistant.Reply{Text: "Here are drone projects.", Status: "ok"},
	})

	resp := postJSON(t, app, "/assistant/sessions", fiber.Map{"initial_query": "drone projects"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeSession(t, resp)
	require.Len(t, created.Turns, 2)
	assert.Equal(t, "drone projects", created.Turns[0].Content)
}

func TestSubmitAssistantQuery_BlankNoOp(t *testing.T) {
	app, _ := newAssistantTestApp(&stubAssistantClient{
		reply: assistant.Reply{Text: "ignored", Status: "ok"},
	})

	created := decodeSession(t, postJSON(t, app, "/assistant/sessions", fiber.Map{}))

	resp := postJSON(t, app, "/assistant/sessions/"+created.SessionID+"/messages",
		fiber.Map{"query": "   "})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	after := decodeSession(t, resp)
	assert.Empty(t, after.Turns)
}

func TestSubmitAssistantQuery_FallbackOnTransportFailure(t *testing.T) {
	app, _ := newAssistantTestApp(&stubAssistantClient{
		err: errors.New("connection refused"),
	})

	created := decodeSession(t, postJSON(t, app, "/assistant/sessions", fiber.Map{}))

	resp := postJSON(t, app, "/assistant/sessions/"+created.SessionID+"/messages",
		fiber.Map{"query": "hello"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	after := decodeSession(t, resp)
	require.Len(t, after.Turns, 2)
	assert.Equal(t, chat.FallbackText, after.Turns[1].Content)
	assert.True(t, after.Turns[1].IsError)
}

func TestSubmitAssistantQuery_UnknownSession(t *testing.T) {
	app, _ := newAssistantTestApp(&stubAssistantClient{})

	resp := postJSON(t, app, "/assistant/sessions/nope/messages", fiber.Map{"query": "hi"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAssistantSession(t *testing.T) {
	app, s := newAssistantTestApp(&stubAssistantClient{})

	created := decodeSession(t, postJSON(t, app, "/assistant/sessions", fiber.Map{}))
	require.Equal(t, 1, s.sessions.Len())

	req := httptest.NewRequest(http.MethodDelete, "/assistant/sessions/"+created.SessionID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.sessions.Len())
}
