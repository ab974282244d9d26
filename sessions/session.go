package sessions

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/jrsteele09/ayursetu-client/token/jwt"
)

// State is the authentication state of a Manager.
type State int

const (
	Initializing State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the identity derived from the held session token. It is never
// persisted on its own.
type User struct {
	Subject   string
	Email     string
	Name      string
	Role      string
	Roles     []string
	ExpiresAt time.Time
	Claims    map[string]any // every decoded claim plus merged profile fields
}

func userFromClaims(c *jwt.Claims) *User {
	return &User{
		Subject:   c.Subject,
		Email:     c.Email,
		Name:      c.Name,
		Role:      c.Role,
		Roles:     append([]string(nil), c.Roles...),
		ExpiresAt: c.ExpiresAt,
		Claims:    maps.Clone(c.Raw),
	}
}

// merged returns a copy of u with the JSON fields of update layered on top.
func (u *User) merged(update any) (*User, error) {
	b, err := json.Marshal(update)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}

	out := u.clone()
	if out.Claims == nil {
		out.Claims = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		out.Claims[k] = v
	}
	if v, ok := fields["email"].(string); ok && v != "" {
		out.Email = v
	}
	if v, ok := fields["name"].(string); ok && v != "" {
		out.Name = v
	}
	if v, ok := fields["role"].(string); ok && v != "" {
		out.Role = v
	}
	return out, nil
}

func (u *User) clone() *User {
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	c.Claims = maps.Clone(u.Claims)
	return &c
}

// Result is the uniform outcome of a session operation. Error holds a
// human-readable message when Success is false.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func success(data any) Result {
	return Result{Success: true, Data: data}
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}
