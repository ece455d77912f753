package localstore

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

// Storage keys for Fyne preferences
const (
	KeyUser  = "user"
	KeyToken = "token"
	KeyCart  = "cart"
)

// Store reads and writes the persisted client-side mirror
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a store backed by the app's preferences
func NewStore(app fyne.App) *Store {
	return &Store{prefs: app.Preferences()}
}

// User returns the persisted session user, or nil when absent or corrupt
func (s *Store) User() *model.User {
	raw := s.prefs.String(KeyUser)
	if raw == "" {
		return nil
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Token returns the persisted bearer token, empty when absent
func (s *Store) Token() string {
	return s.prefs.String(KeyToken)
}

// SaveSession persists the user and token together. The session invariant
// is that both entries are set and cleared as a unit.
func (s *Store) SaveSession(user *model.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	s.prefs.SetString(KeyUser, string(raw))
	if token != "" {
		s.prefs.SetString(KeyToken, token)
	}
	return nil
}

// SaveUser overwrites the persisted user, leaving the token untouched.
// Used after a profile update.
func (s *Store) SaveUser(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	s.prefs.SetString(KeyUser, string(raw))
	return nil
}

// ClearSession removes both the user and token entries
func (s *Store) ClearSession() {
	s.prefs.RemoveValue(KeyUser)
	s.prefs.RemoveValue(KeyToken)
}

// ClearToken removes only the token entry. Invoked by the API client when
// the backend rejects the token with 401.
func (s *Store) ClearToken() {
	s.prefs.RemoveValue(KeyToken)
}

// CartItems returns the persisted cart mirror, empty when absent or corrupt
func (s *Store) CartItems() []model.CartItem {
	raw := s.prefs.String(KeyCart)
	if raw == "" {
		return nil
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// SaveCartItems persists the cart mirror
func (s *Store) SaveCartItems(items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	s.prefs.SetString(KeyCart, string(raw))
	return nil
}

// ClearCart removes the cart entry
func (s *Store) ClearCart() {
	s.prefs.RemoveValue(KeyCart)
}
