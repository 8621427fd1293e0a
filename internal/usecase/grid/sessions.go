package grid

import (
	"log/slog"
	"sync"
)

// Sessions keeps one controller per logged-in user. Controllers are created on
// first use and discarded on logout.
type Sessions struct {
	deps Deps

	mu          sync.Mutex
	controllers map[string]*Controller
}

func NewSessions(deps Deps) *Sessions {
	return &Sessions{
		deps:        deps,
		controllers: make(map[string]*Controller),
	}
}

func (s *Sessions) Get(userID string) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.controllers[userID]
	if !ok {
		c = NewController(s.deps)
		s.controllers[userID] = c
		s.deps.Logger.Debug("grid session opened", slog.String("user_id", userID))
	}
	return c
}

func (s *Sessions) Close(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.controllers[userID]; ok {
		delete(s.controllers, userID)
		s.deps.Logger.Debug("grid session closed", slog.String("user_id", userID))
	}
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.controllers)
}
