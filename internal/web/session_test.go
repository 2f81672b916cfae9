package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carryCookies(t *testing.T, from *httptest.ResponseRecorder, to *http.Request) {
	t.Helper()
	for _, c := range from.Result().Cookies() {
		if c.MaxAge >= 0 {
			to.AddCookie(c)
		}
	}
}

func TestSessions_SignInRoundTrip(t *testing.T) {
	sess := NewSessions(testSessionSecret, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sess.SignIn(w, r, "user-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	carryCookies(t, w, next)

	id, ok := sess.UserID(next)
	if !ok {
		t.Fatal("expected an authenticated session")
	}
	if id != "user-123" {
		t.Errorf("expected user-123, got %s", id)
	}
}

func TestSessions_SignOutClearsSession(t *testing.T) {
	sess := NewSessions(testSessionSecret, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sess.SignIn(w, r, "user-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	signedIn := httptest.NewRequest(http.MethodPost, "/logout", nil)
	carryCookies(t, w, signedIn)

	w2 := httptest.NewRecorder()
	if err := sess.SignOut(w2, signedIn); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	after := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	carryCookies(t, w2, after)

	if _, ok := sess.UserID(after); ok {
		t.Error("expected no authenticated session after sign-out")
	}
}

func TestSessions_NoSessionWithoutCookie(t *testing.T) {
	sess := NewSessions(testSessionSecret, false)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if _, ok := sess.UserID(r); ok {
		t.Error("expected no session for a cookieless request")
	}
}

func TestSessions_FlashIsReadOnce(t *testing.T) {
	sess := NewSessions(testSessionSecret, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sess.AddFlash(w, r, FlashError, "Invalid credentials"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(t, w, first)

	w2 := httptest.NewRecorder()
	flashes := sess.Flashes(w2, first)
	if len(flashes) != 1 {
		t.Fatalf("expected one flash, got %d", len(flashes))
	}
	if flashes[0].Kind != FlashError || flashes[0].Text != "Invalid credentials" {
		t.Errorf("unexpected flash: %+v", flashes[0])
	}

	second := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(t, w2, second)

	w3 := httptest.NewRecorder()
	if got := sess.Flashes(w3, second); len(got) != 0 {
		t.Errorf("expected flash to be consumed, got %d", len(got))
	}
}

func TestSessions_FlashDoesNotAuthenticate(t *testing.T) {
	sess := NewSessions(testSessionSecret, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sess.AddFlash(w, r, FlashError, "User does not exist"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	carryCookies(t, w, next)

	if _, ok := sess.UserID(next); ok {
		t.Error("expected a flash-only session to stay unauthenticated")
	}
}
