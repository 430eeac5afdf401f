package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/nourjazi01/hack-seneca/internal/session"
)

// ErrUnauthorized means the request's user id does not match a live session.
// The session itself is untouched; only the offending turn is rejected.
var ErrUnauthorized = errors.New("user not authenticated")

const degradedReply = "I'm sorry, I'm having trouble processing your request right now."

// AgentInvoker is the boundary to the external agent-orchestration engine.
// It receives the assembled input and hands back one opaque text result;
// nothing here assumes anything about delegation, memory or retries on the
// far side.
type AgentInvoker interface {
	Invoke(ctx context.Context, input AgentInput) (string, error)
}

// Service runs one chat turn end to end: authorize, pre-filter, build the
// agent input, invoke, normalize, record the exchange. It owns the
// conversation windows, one per live session.
type Service struct {
	registry *session.Registry
	agent    AgentInvoker

	// When set, agent failures embed the underlying error text in the
	// degraded reply instead of a generic phrase. Off in production.
	exposeUpstreamErrors bool

	mu      sync.Mutex
	windows map[string]*Window
}

func NewService(registry *session.Registry, agent AgentInvoker, exposeUpstreamErrors bool) *Service {
	return &Service{
		registry:             registry,
		agent:                agent,
		exposeUpstreamErrors: exposeUpstreamErrors,
		windows:              make(map[string]*Window),
	}
}

// StartConversation gives userID a fresh, empty window. Called after login
// so short-term memory never leaks across sessions. Windows of users whose
// sessions are gone (the replaced user, in single-session mode) are dropped
// here as well.
func (s *Service) StartConversation(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.windows {
		if id != userID && !s.registry.Authorize(id) {
			delete(s.windows, id)
		}
	}
	s.windows[userID] = NewWindow()
}

// HandleMessage executes one chat turn for userID and returns the reply
// text. The only error it returns is ErrUnauthorized; upstream failures are
// converted into a degraded but well-formed reply.
func (s *Service) HandleMessage(ctx context.Context, userID, message string) (string, error) {
	sess := s.registry.Get(userID)
	if sess == nil {
		return "", ErrUnauthorized
	}

	if ClassifyIntent(message) == IntentGreeting {
		// Fast path: no agent call, and the exchange is not recorded in
		// the window.
		return GreetingReply(sess.Data.DisplayName()), nil
	}

	window := s.window(userID)
	window.Append(SpeakerUser, message)

	input := BuildAgentInput(message, sess, window)

	raw, err := s.agent.Invoke(ctx, input)
	if err != nil {
		log.Printf("chat: agent invocation for %s failed: %v", userID, err)
		return s.degraded(err), nil
	}

	reply := NormalizeResponse(raw)
	window.Append(SpeakerAssistant, reply)
	return reply, nil
}

// Window returns the live window for userID, for inspection. It may be nil
// when the user never started a conversation.
func (s *Service) Window(userID string) *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows[userID]
}

func (s *Service) window(userID string) *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[userID]
	if !ok {
		w = NewWindow()
		s.windows[userID] = w
	}
	return w
}

func (s *Service) degraded(err error) string {
	if s.exposeUpstreamErrors {
		return fmt.Sprintf("%s Error: %v", degradedReply, err)
	}
	return degradedReply + " Please try again in a moment."
}
