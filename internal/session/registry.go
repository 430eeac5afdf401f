package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

// ErrInvalidUserID is returned by Login for ids that do not match the fixed
// user_XXXXX format. It is an expected outcome, not a fault.
var ErrInvalidUserID = errors.New("invalid user id format")

var userIDPattern = regexp.MustCompile(`^user_\d{5}$`)

// ValidUserID reports whether id matches the user_ + 5 digits format.
func ValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}

// Session is one authenticated user together with the data aggregated for
// them at login time.
type Session struct {
	UserID string
	Data   *models.UserData
}

// DataLoader is the slice of UserDataStore the registry needs.
type DataLoader interface {
	Load(ctx context.Context, userID string) (*models.UserData, error)
}

// Registry owns the live sessions. The default mode keeps a single slot: a
// new login replaces whoever was logged in before, matching the one
// interactive user the system models. Multi-session mode keys sessions by
// user id instead and is the documented extension point for serving more
// than one user from one process.
type Registry struct {
	mu       sync.Mutex
	loader   DataLoader
	multi    bool
	active   *Session
	sessions map[string]*Session
}

func NewRegistry(loader DataLoader, multi bool) *Registry {
	return &Registry{
		loader:   loader,
		multi:    multi,
		sessions: make(map[string]*Session),
	}
}

// Login validates the id, loads the user's data and installs the session.
// An unknown user still logs in; their session simply carries no profile.
func (r *Registry) Login(ctx context.Context, userID string) (*Session, error) {
	if !ValidUserID(userID) {
		return nil, fmt.Errorf("%w: expected user_ followed by 5 digits, got %q", ErrInvalidUserID, userID)
	}

	data, err := r.loader.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user data: %w", err)
	}

	sess := &Session{UserID: userID, Data: data}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.multi {
		r.sessions[userID] = sess
	} else {
		r.active = sess
	}
	return sess, nil
}

// Current returns the active session in single-slot mode, nil when nobody is
// logged in. In multi-session mode there is no single "current" user and the
// result is always nil; use Get.
func (r *Registry) Current() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.multi {
		return nil
	}
	return r.active
}

// Get returns the session for userID, nil when that user is not logged in.
func (r *Registry) Get(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.multi {
		return r.sessions[userID]
	}
	if r.active != nil && r.active.UserID == userID {
		return r.active
	}
	return nil
}

// Authorize reports whether a chat request claiming userID may proceed.
func (r *Registry) Authorize(userID string) bool {
	return r.Get(userID) != nil
}
