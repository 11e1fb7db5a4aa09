// Package session owns the process-wide authentication state: the current
// user, the initial restoration flag, and the login/logout transitions.
// Exactly one Manager exists per process; every consumer observes the same
// user/loading pair through State and Subscribe.
package session

import (
	"context"
	"sync"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/authz"
	"github.com/airiskcouncil/arcctl/internal/log"
)

// State is a snapshot of the session.
type State struct {
	// User is nil until restoration resolves, and stays nil for
	// anonymous visitors.
	User *api.User

	// Loading is true from construction until the initial who-am-I
	// call settles, then false forever.
	Loading bool
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Manager holds the session and broadcasts every change to subscribers.
// All mutation goes through Restore, Login, Logout, and Invalidate; the
// user object is never mutated from outside.
type Manager struct {
	mu       sync.Mutex
	client   *api.Client
	store    *CookieStore
	logger   *log.Logger
	user     *api.User
	loading  bool
	restored bool
	subs     map[int]func(State)
	nextSub  int
}

// Option configures a Manager.
type Option func(*Manager)

// WithCookieStore persists the session cookie jar across invocations.
func WithCookieStore(store *CookieStore) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithLogger sets the manager's logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session manager in the Loading state.
func NewManager(client *api.Client, opts ...Option) *Manager {
	m := &Manager{
		client:  client,
		loading: true,
		logger:  log.DefaultLogger(),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{User: m.user, Loading: m.loading}
}

// Subscribe registers a listener for session changes and returns an
// unsubscribe function. The listener is called with a snapshot after
// every transition.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Restore resolves the initial session by asking the server who the
// cookie belongs to. Success with a user payload lands in Authenticated;
// any failure (the expected 401 for anonymous visitors included) lands in
// Anonymous. Either way Loading flips to false exactly once. A cancelled
// context abandons restoration without touching state.
func (m *Manager) Restore(ctx context.Context) {
	if m.store != nil {
		if cookies, err := m.store.Load(); err == nil && len(cookies) > 0 {
			m.client.SetCookies(cookies)
		}
	}

	user, err := m.client.Me(ctx)

	if ctx.Err() != nil {
		// Abandoned mid-flight; leave state as-is.
		return
	}

	m.mu.Lock()
	if m.restored {
		m.mu.Unlock()
		return
	}
	m.restored = true
	m.loading = false
	if err == nil && user != nil {
		m.user = user
	} else {
		m.user = nil
		if err != nil {
			m.logger.Debug("session restore resolved anonymous", "reason", err.Error())
		}
	}
	m.mu.Unlock()

	m.broadcast()
}

// Login records a user after a successful credential exchange. The
// session cookie is already in the client's jar; this stores the user
// object and persists the jar.
func (m *Manager) Login(user *api.User) {
	m.mu.Lock()
	m.user = user
	m.loading = false
	m.restored = true
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Save(m.client.Cookies()); err != nil {
			m.logger.Warn("failed to persist session", "error", err.Error())
		}
	}

	m.broadcast()
}

// Logout ends the session. The server call is best-effort: a network
// failure is swallowed because the cookie may already be gone. Local
// state and the persisted jar are always cleared.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		m.logger.Debug("server logout failed", "error", err.Error())
	}

	m.client.ClearCookies()
	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("failed to clear persisted session", "error", err.Error())
		}
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.broadcast()
}

// Invalidate drops the session without a server call. Wired to the API
// client's session-invalid hook so an expired cookie anywhere flips every
// consumer to Anonymous.
func (m *Manager) Invalidate() {
	m.client.ClearCookies()
	if m.store != nil {
		_ = m.store.Clear()
	}

	m.mu.Lock()
	m.user = nil
	m.loading = false
	m.restored = true
	m.mu.Unlock()

	m.broadcast()
}

func (m *Manager) broadcast() {
	m.mu.Lock()
	state := State{User: m.user, Loading: m.loading}
	listeners := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// role returns the current user's role, or empty when anonymous.
// Predicates go through here so they always reflect the latest state.
func (m *Manager) role() authz.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return ""
	}
	return m.user.Role
}

// Role returns the current user's role; empty when anonymous.
func (m *Manager) Role() authz.Role {
	return m.role()
}

// IsAdmin reports whether the current user is an administrator.
func (m *Manager) IsAdmin() bool { return m.role() == authz.RoleAdmin }

// IsExecutive reports whether the current user is an executive member.
func (m *Manager) IsExecutive() bool { return m.role() == authz.RoleExecutive }

// IsPaidMember reports whether the current user is a paid member.
func (m *Manager) IsPaidMember() bool { return m.role() == authz.RolePaidMember }

// IsProductCompany reports whether the current user is a product company.
func (m *Manager) IsProductCompany() bool { return m.role() == authz.RoleProductCompany }

// IsUniversity reports whether the current user is a university member.
func (m *Manager) IsUniversity() bool { return m.role() == authz.RoleUniversity }

// CanDownloadFramework reports whether the current user may download
// framework documents.
func (m *Manager) CanDownloadFramework() bool {
	return authz.Can(m.role(), authz.CapDownloadFramework)
}

// CanUploadWhitepaper reports whether the current user may upload
// whitepapers.
func (m *Manager) CanUploadWhitepaper() bool {
	return authz.Can(m.role(), authz.CapUploadWhitepaper)
}

// CanUploadProduct reports whether the current user may upload product
// listings.
func (m *Manager) CanUploadProduct() bool {
	return authz.Can(m.role(), authz.CapUploadProduct)
}
