package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/refineryiq/riq/internal/log"
	"github.com/refineryiq/riq/internal/platform"
)

// User is the authenticated actor as seen by the rest of the CLI
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// AuthAPI is the slice of the backend client the manager needs for login.
// *platform.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*platform.LoginResponse, error)
}

// Manager is the single source of truth for who is logged in and with what
// role. It owns the persisted token/role/user keys; nothing else writes them.
type Manager struct {
	repo   Repository
	api    AuthAPI
	logger *log.Logger
}

// NewManager creates a session manager over the given repository and auth API
func NewManager(repo Repository, api AuthAPI) *Manager {
	return &Manager{
		repo:   repo,
		api:    api,
		logger: log.Global(),
	}
}

// Login authenticates against the backend and persists the resulting session.
// Nothing is written until the backend call succeeds, so a failed login never
// leaves partial state behind. A failed write rolls the three keys back to
// absent before returning.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := userFromLogin(email, resp)

	record, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user record: %w", err)
	}

	writes := []struct {
		key   string
		value string
	}{
		{KeyToken, resp.AccessToken},
		{KeyRole, string(user.Role)},
		{KeyUser, string(record)},
	}
	for _, w := range writes {
		if err := m.repo.Set(w.key, w.value); err != nil {
			m.clear()
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}

	m.logger.Info("logged in", "email", user.Email, "role", user.Role)

	return &user, nil
}

// userFromLogin derives the session user from a login response. The display
// name prefers the backend-provided name and falls back to the local part of
// the email; the role prefers the embedded user record over the top-level
// field, normalized either way.
func userFromLogin(email string, resp *platform.LoginResponse) User {
	name := ""
	role := resp.Role
	if resp.User != nil {
		name = resp.User.Name
		if resp.User.Role != "" {
			role = resp.User.Role
		}
	}
	if name == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	return User{
		Email: email,
		Name:  name,
		Role:  NormalizeRole(role),
	}
}

// Logout clears all persisted session keys. It is idempotent, purely local,
// and never fails.
func (m *Manager) Logout() {
	m.clear()
	m.logger.Info("logged out")
}

func (m *Manager) clear() {
	m.repo.Delete(KeyToken)
	m.repo.Delete(KeyRole)
	m.repo.Delete(KeyUser)
}

// Restore reconstructs the session from persisted state without contacting
// the backend. Missing or corrupt state means "not logged in": it is reported
// as nil and deliberately not cleaned up, matching the tolerant-read contract.
func (m *Manager) Restore() *User {
	token, ok := m.repo.Get(KeyToken)
	if !ok || token == "" {
		return nil
	}

	record, ok := m.repo.Get(KeyUser)
	if !ok {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(record), &user); err != nil {
		m.logger.Debug("ignoring corrupt user record", "error", err)
		return nil
	}
	if user.Email == "" {
		return nil
	}

	user.Role = NormalizeRole(string(user.Role))
	return &user
}

// IsAuthenticated reports whether a token is present. This is a presence
// check only; validity and expiry are the backend's call.
func (m *Manager) IsAuthenticated() bool {
	token, ok := m.repo.Get(KeyToken)
	return ok && token != ""
}

// Token returns the persisted bearer token, empty when logged out. Manager
// therefore satisfies platform.TokenSource.
func (m *Manager) Token() string {
	token, _ := m.repo.Get(KeyToken)
	return token
}

// AuthHeader returns the Authorization header map for the current session: a
// single Bearer entry when a token exists, otherwise an empty map. It never
// fails, even over empty storage.
func (m *Manager) AuthHeader() map[string]string {
	headers := map[string]string{}
	if token := m.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// Authorize reports whether the current session may access something guarded
// by required. Access is granted iff a session exists and either no specific
// role is required or the session's role matches. Callers decide how the two
// denial cases differ (login prompt vs. role error).
func (m *Manager) Authorize(required Role) bool {
	user := m.Restore()
	if user == nil {
		return false
	}
	return required == "" || user.Role == required
}

// Compile-time verification that Manager feeds the API client
var _ platform.TokenSource = (*Manager)(nil)
