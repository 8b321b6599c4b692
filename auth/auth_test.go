package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// carry moves the session cookies from a response onto a fresh request.
func carry(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestLoginLogoutCycle(t *testing.T) {
	m := NewManager("test-session-key")

	w := httptest.NewRecorder()
	if err := m.Login(w, httptest.NewRequest(http.MethodGet, "/", nil), 7); err != nil {
		t.Fatalf("failed to save the session: %v", err)
	}

	r := carry(w)
	id, ok := m.CurrentUserID(r)
	if !ok || id != 7 {
		t.Fatalf("expected user 7 logged in, got %d (%v)", id, ok)
	}

	w2 := httptest.NewRecorder()
	if err := m.Logout(w2, r); err != nil {
		t.Fatalf("failed to save the session: %v", err)
	}
	if _, ok := m.CurrentUserID(carry(w2)); ok {
		t.Error("expected no user after logout")
	}
}

func TestFlashRoundTrip(t *testing.T) {
	m := NewManager("test-session-key")

	w := httptest.NewRecorder()
	if err := m.Flash(w, httptest.NewRequest(http.MethodGet, "/", nil), "Hello, alice!"); err != nil {
		t.Fatalf("failed to queue the flash: %v", err)
	}

	w2 := httptest.NewRecorder()
	flashes := m.Flashes(w2, carry(w))
	if len(flashes) != 1 || flashes[0] != "Hello, alice!" {
		t.Fatalf("expected the queued flash back, got %v", flashes)
	}

	if left := m.Flashes(httptest.NewRecorder(), carry(w2)); len(left) != 0 {
		t.Errorf("expected the flash queue drained, got %v", left)
	}
}
