package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "warbler_session"
	userKey     = "curr_user"
)

// Manager keeps the logged-in user id and flash messages in a cookie
// session.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	}
	return &Manager{store: store}
}

// Login stores the user id in the session.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[userKey] = userID
	return session.Save(r, w)
}

// Logout drops the user id from the session.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, userKey)
	return session.Save(r, w)
}

// CurrentUserID returns the logged-in user id, if any.
func (m *Manager) CurrentUserID(r *http.Request) (uint, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[userKey].(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// Flash queues a message to show on the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes drains the queued flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
