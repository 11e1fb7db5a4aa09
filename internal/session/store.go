package session

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

// cookieFileName is the jar file inside the arcctl config directory.
const cookieFileName = "cookies.json"

// storedCookie is the persisted shape of one cookie. Values are opaque:
// they are written and read back verbatim, never interpreted.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// CookieStore persists the session cookie jar between CLI invocations,
// the terminal analog of the browser holding the HttpOnly cookie.
type CookieStore struct {
	path string
}

// NewCookieStore creates a store rooted at the given config directory.
func NewCookieStore(dir string) *CookieStore {
	return &CookieStore{path: filepath.Join(dir, cookieFileName)}
}

// Path returns the jar file location.
func (s *CookieStore) Path() string {
	return s.path
}

// Load reads the persisted cookies. A missing file is an empty session,
// not an error.
func (s *CookieStore) Load() ([]*http.Cookie, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeFileReadFailed, "failed to read session file", err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeFileReadFailed, "corrupt session file", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	now := time.Now()
	for _, c := range stored {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return cookies, nil
}

// Save writes the cookies, readable only by the current user.
func (s *CookieStore) Save(cookies []*http.Cookie) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeFileWriteFailed, "failed to create config directory", err)
	}

	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeFileWriteFailed, "failed to encode session file", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeFileWriteFailed, "failed to write session file", err)
	}
	return nil
}

// Clear removes the persisted session. Idempotent.
func (s *CookieStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return cerrors.Wrap(cerrors.ErrCodeFileWriteFailed, "failed to remove session file", err)
	}
	return nil
}
