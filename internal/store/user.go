package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/api"
	"github.com/fruitmall/fruitmall-client/internal/localstore"
	"github.com/fruitmall/fruitmall-client/internal/model"
)

// Credentials is the login request payload
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate is the profile edit payload
type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// loginResponse is the payload of POST /auth/login
type loginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// UserStore holds the signed-in session. The session and token are always
// persisted and cleared together.
type UserStore struct {
	mu      sync.RWMutex
	current *model.User

	gateway Gateway
	local   *localstore.Store
	log     zerolog.Logger
}

// NewUserStore creates a user container, restoring a persisted session
// when one exists.
func NewUserStore(gateway Gateway, local *localstore.Store, log zerolog.Logger) *UserStore {
	return &UserStore{
		current: local.User(),
		gateway: gateway,
		local:   local,
		log:     log,
	}
}

// Login authenticates against the backend and installs the session
func (s *UserStore) Login(ctx context.Context, username, password string) (*model.User, error) {
	payload, err := s.gateway.Post(ctx, "/auth/login", Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.User.Status == "" {
		resp.User.Status = model.UserStatusActive
	}

	s.mu.Lock()
	s.current = &resp.User
	s.mu.Unlock()

	if err := s.local.SaveSession(&resp.User, resp.Token); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session")
	}
	s.log.Debug().Str("username", resp.User.Username).Msg("signed in")
	return &resp.User, nil
}

// RegisterRequest is the account creation payload
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Register creates an account. The backend does not open a session for
// new accounts; callers route to login afterwards.
func (s *UserStore) Register(ctx context.Context, req RegisterRequest) error {
	if _, err := s.gateway.Post(ctx, "/auth/register", req); err != nil {
		return err
	}
	s.log.Debug().Str("username", req.Username).Msg("account registered")
	return nil
}

// Logout tells the backend best-effort and always clears the in-memory
// session plus both persisted entries.
func (s *UserStore) Logout(ctx context.Context) {
	if _, err := s.gateway.Post(ctx, "/auth/logout", nil); err != nil {
		s.log.Warn().Err(err).Msg("logout call failed; clearing local session anyway")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.local.ClearSession()
}

// UpdateProfile sends the edit to the backend and merges the result into
// the snapshot.
func (s *UserStore) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.User, error) {
	payload, err := s.gateway.Put(ctx, "/users/profile", update)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, fmt.Errorf("no active session")
	}

	updated := *s.current
	var fromBackend model.User
	if err := json.Unmarshal(payload, &fromBackend); err == nil && fromBackend.ID != 0 {
		updated = fromBackend
	} else {
		mergeProfile(&updated, update)
	}
	if updated.Status == "" {
		updated.Status = model.UserStatusActive
	}
	s.current = &updated

	if err := s.local.SaveUser(&updated); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist updated profile")
	}
	return &updated, nil
}

// mergeProfile applies non-empty edit fields onto the user
func mergeProfile(user *model.User, update ProfileUpdate) {
	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Address != "" {
		user.Address = update.Address
	}
}

// ListUsers fetches all accounts for the back-office user management
// view. The backend enforces the admin requirement; this only decodes.
func (s *UserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	payload, err := s.gateway.Get(ctx, "/users", nil)
	if err != nil {
		return nil, err
	}
	users, err := api.DecodeItems[model.User](payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}
	return users, nil
}

// Current returns a copy of the signed-in user, or nil
func (s *UserStore) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether a session is installed
func (s *UserStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// IsAdmin reports whether the session's role set intersects the fixed
// admin role set.
func (s *UserStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAdmin()
}
