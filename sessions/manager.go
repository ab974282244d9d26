package sessions

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/jrsteele09/ayursetu-client/gateway"
	"github.com/jrsteele09/ayursetu-client/token"
	"github.com/jrsteele09/ayursetu-client/token/jwt"
	"github.com/jrsteele09/ayursetu-client/users"
	"github.com/rs/zerolog/log"
)

// LoginPath is where the navigator is sent when the backend rejects the session.
const LoginPath = "/login"

const (
	loginFailed         = "Login failed"
	registrationFailed  = "Registration failed"
	profileUpdateFailed = "Profile update failed"
)

// Navigator moves the user interface to path.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Gateway is the part of the API gateway client the session manager drives.
type Gateway interface {
	SetDefaultHeader(key, value string)
	DeleteDefaultHeader(key string)
	AddRequestInterceptor(i gateway.RequestInterceptor)
	OnUnauthorized(hook gateway.UnauthorizedHook)
}

type UsersAPI interface {
	Login(ctx context.Context, creds users.Credentials) (*users.LoginResponse, error)
	Register(ctx context.Context, reg users.Registration) (*users.Profile, error)
	UpdateProfile(ctx context.Context, email string, update users.ProfileUpdate) (*users.Profile, error)
}

// Manager owns the session token lifecycle. Login, Logout, RestoreSession and
// UpdateProfile are the only mutators of the session; concurrent calls are
// applied in the order their responses arrive.
type Manager struct {
	gw    Gateway
	users UsersAPI
	store token.Repo
	nav   Navigator

	mu    sync.RWMutex
	state State
	user  *User

	restoreOnce sync.Once
	ready       chan struct{}
}

// New wires a Manager into gw: every outbound request carries the stored
// token, and any 401 logs out and navigates to LoginPath.
func New(gw Gateway, usersAPI UsersAPI, store token.Repo, nav Navigator) *Manager {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	m := &Manager{
		gw:    gw,
		users: usersAPI,
		store: store,
		nav:   nav,
		state: Initializing,
		ready: make(chan struct{}),
	}
	gw.AddRequestInterceptor(m.attachToken)
	gw.OnUnauthorized(m.handleUnauthorized)
	return m
}

// RestoreSession reads the persisted token once and settles the initial state.
// Later calls return the current state without touching storage.
func (m *Manager) RestoreSession(_ context.Context) State {
	m.restoreOnce.Do(func() {
		defer close(m.ready)
		m.restore()
	})
	return m.State()
}

func (m *Manager) restore() {
	raw, err := m.store.Get(token.StorageKey)
	if err != nil && !errors.Is(err, token.ErrNotFound) {
		log.Warn().Err(err).Msg("Failed to read stored session token")
	}
	if raw == "" {
		m.mu.Lock()
		m.state = Anonymous
		m.mu.Unlock()
		log.Debug().Msg("No stored session")
		return
	}

	claims, err := jwt.Decode(raw)
	if err == nil {
		err = claims.Validate()
	}
	if err != nil {
		log.Info().Err(err).Msg("Stored session token rejected")
		m.Logout()
		m.mu.Lock()
		m.state = Anonymous
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.authenticateLocked(raw, claims)
	m.mu.Unlock()
	log.Debug().Str("email", claims.Email).Msg("Session restored")
}

// Ready is closed once RestoreSession has completed.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

// SessionChecked reports whether RestoreSession has completed.
func (m *Manager) SessionChecked() bool {
	select {
	case <-m.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until RestoreSession has completed or ctx is done.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login exchanges credentials for a session token. On failure the existing
// session is left as it was.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	resp, err := m.users.Login(ctx, users.Credentials{Email: email, Password: password})
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("Login rejected")
		return failure(messageFor(err, loginFailed))
	}

	claims, err := jwt.Decode(resp.Token)
	if err != nil {
		log.Warn().Err(err).Msg("Login response carried an unusable token")
		return failure(messageFor(err, loginFailed))
	}

	if err := m.store.Set(token.StorageKey, resp.Token); err != nil {
		log.Err(err).Msg("Failed to persist session token")
		return failure(messageFor(err, loginFailed))
	}

	m.mu.Lock()
	m.authenticateLocked(resp.Token, claims)
	m.mu.Unlock()

	log.Info().Str("email", claims.Email).Msg("Logged in")
	return success(nil)
}

// Register creates an account. It does not log the new user in.
func (m *Manager) Register(ctx context.Context, reg users.Registration) Result {
	profile, err := m.users.Register(ctx, reg)
	if err != nil {
		log.Debug().Err(err).Str("email", reg.Email).Msg("Registration rejected")
		return failure(messageFor(err, registrationFailed))
	}
	return success(profile)
}

// Logout clears the stored token, the user and the default Authorization
// header. It is safe to call without a session.
func (m *Manager) Logout() {
	if err := m.store.Delete(token.StorageKey); err != nil {
		log.Warn().Err(err).Msg("Failed to remove stored session token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	wasAuthenticated := m.state == Authenticated
	m.user = nil
	if m.state != Initializing {
		m.state = Anonymous
	}
	m.gw.DeleteDefaultHeader(gateway.AuthorizationHeader)

	if wasAuthenticated {
		log.Info().Msg("Logged out")
	}
}

// UpdateProfile sends update to the current user's profile and merges the
// returned fields into the session user. A failure never ends the session.
func (m *Manager) UpdateProfile(ctx context.Context, update users.ProfileUpdate) Result {
	m.mu.RLock()
	var email string
	if m.user != nil {
		email = m.user.Email
	}
	m.mu.RUnlock()

	if email == "" {
		log.Debug().Msg("Profile update without an authenticated user")
		return failure(profileUpdateFailed)
	}

	profile, err := m.users.UpdateProfile(ctx, email, update)
	if err != nil {
		msg := gateway.ErrorMessage(err)
		if msg == "" {
			msg = profileUpdateFailed
		}
		log.Debug().Err(err).Msg("Profile update rejected")
		return failure(msg)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// A logout that raced this update wins.
	if m.state == Authenticated && m.user != nil {
		merged, err := m.user.merged(profile)
		if err != nil {
			log.Err(err).Msg("Failed to merge profile into session")
		} else {
			m.user = merged
		}
	}
	return success(profile)
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == Authenticated
}

// User returns a copy of the authenticated user.
func (m *Manager) User() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user.clone(), true
}

func (m *Manager) authenticateLocked(raw string, claims *jwt.Claims) {
	m.user = userFromClaims(claims)
	m.state = Authenticated
	m.gw.SetDefaultHeader(gateway.AuthorizationHeader, gateway.BearerValue(raw))
}

// attachToken sets the Authorization header from the token currently in storage.
func (m *Manager) attachToken(req *http.Request) error {
	raw, err := m.store.Get(token.StorageKey)
	if err != nil {
		if !errors.Is(err, token.ErrNotFound) {
			log.Warn().Err(err).Msg("Failed to read session token for request")
		}
		return nil
	}
	if raw != "" {
		gateway.SetBearer(req, raw)
	}
	return nil
}

func (m *Manager) handleUnauthorized(_ context.Context) {
	m.Logout()
	m.nav.Navigate(LoginPath)
}

// messageFor prefers the backend message, then the error text, then fallback.
func messageFor(err error, fallback string) string {
	if msg := gateway.ErrorMessage(err); msg != "" {
		return msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
