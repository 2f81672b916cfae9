package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/abenov/authweb/internal/common/constants"
	"github.com/abenov/authweb/internal/user/domain"
)

const (
	sessionName      = "authweb_session"
	sessionKeyUserID = "user_id"
)

const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Flash is a read-once status message shown on the next rendered page.
type Flash struct {
	Kind string
	Text string
}

func init() {
	gob.Register(Flash{})
}

// Sessions wraps the cookie store that owns both the authenticated-session
// flag and the pending flash messages.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret string, secure bool) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(constants.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

func (s *Sessions) SignIn(w http.ResponseWriter, r *http.Request, userID domain.ID) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Values[sessionKeyUserID] = string(userID)
	return sess.Save(r, w)
}

func (s *Sessions) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	delete(sess.Values, sessionKeyUserID)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

func (s *Sessions) UserID(r *http.Request) (domain.ID, bool) {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}

	id, ok := sess.Values[sessionKeyUserID].(string)
	if !ok || id == "" {
		return "", false
	}

	return domain.ID(id), true
}

func (s *Sessions) AddFlash(w http.ResponseWriter, r *http.Request, kind, text string) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.AddFlash(Flash{Kind: kind, Text: text})
	return sess.Save(r, w)
}

// Flashes drains the pending messages; saving the session persists their
// removal so each message renders exactly once.
func (s *Sessions) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}

	_ = sess.Save(r, w)
	return flashes
}
