package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abenov/authweb/internal/auth/service"
	commonhttp "github.com/abenov/authweb/internal/common/http"
	"github.com/abenov/authweb/internal/common/logger"
	"github.com/abenov/authweb/internal/observability/metrics"
)

// User-visible copy. Account-not-found and invalid-credentials stay
// distinguishable; unifying them is a policy change made here.
const (
	msgUserNotFound       = "User does not exist"
	msgInvalidCredentials = "Invalid credentials"
	msgEmailTaken         = "Email already exists"
	msgRegistered         = "You are now registered and can log in"
)

type Handler struct {
	auth      *service.AuthService
	sessions  *Sessions
	templates *Templates
	routes    Routes
	timeout   time.Duration
	log       *logger.Logger
}

func NewHandler(
	auth *service.AuthService,
	sess *Sessions,
	templates *Templates,
	routes Routes,
	timeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{
		auth:      auth,
		sessions:  sess,
		templates: templates,
		routes:    routes,
		timeout:   timeout,
		log:       log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(routes.Health, commonhttp.HealthHandler(log))
	mux.HandleFunc(routes.Home, h.home)
	mux.HandleFunc(routes.Login, h.login)
	mux.HandleFunc(routes.Register, h.register)
	mux.HandleFunc(routes.Dashboard, h.dashboard)
	mux.HandleFunc(routes.Logout, h.logout)
	return mux
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches every unregistered path.
	if r.URL.Path != h.routes.Home {
		http.NotFound(w, r)
		return
	}

	h.templates.Render(w, "index", pageData{
		Title:   "Welcome",
		Flashes: h.sessions.Flashes(w, r),
		Routes:  h.routes,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.templates.Render(w, "login", pageData{
			Title:   "Log in",
			Flashes: h.sessions.Flashes(w, r),
			Routes:  h.routes,
		})
	case http.MethodPost:
		h.loginSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.auth.Login(ctx, service.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		h.failLogin(w, r, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		h.log.Errorf("failed to establish session: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.SessionsEstablished.Inc()
	http.Redirect(w, r, h.routes.Dashboard, http.StatusSeeOther)
}

func (h *Handler) failLogin(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		message = msgUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		message = msgInvalidCredentials
	default:
		if vErr, ok := service.AsValidationError(err); ok {
			message = vErr.Error()
			break
		}
		h.log.Errorf("login failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.flashAndRedirect(w, r, FlashError, message, h.routes.Login)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.templates.Render(w, "register", pageData{
			Title:   "Register",
			Flashes: h.sessions.Flashes(w, r),
			Routes:  h.routes,
		})
	case http.MethodPost:
		h.registerSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, err := h.auth.Register(ctx, service.RegisterInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		h.failRegister(w, r, err)
		return
	}

	h.flashAndRedirect(w, r, FlashSuccess, msgRegistered, h.routes.Login)
}

func (h *Handler) failRegister(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		message = msgEmailTaken
	default:
		if vErr, ok := service.AsValidationError(err); ok {
			message = vErr.Error()
			break
		}
		h.log.Errorf("register failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.flashAndRedirect(w, r, FlashError, message, h.routes.Register)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := h.sessions.UserID(r)
	if !ok {
		http.Redirect(w, r, h.routes.Login, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.auth.FindUser(ctx, userID)
	if err != nil {
		// Stale session: the account behind it no longer resolves.
		if errors.Is(err, service.ErrAccountNotFound) {
			_ = h.sessions.SignOut(w, r)
			http.Redirect(w, r, h.routes.Login, http.StatusSeeOther)
			return
		}
		h.log.Errorf("dashboard lookup failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.templates.Render(w, "dashboard", pageData{
		Title:    "Dashboard",
		Flashes:  h.sessions.Flashes(w, r),
		Routes:   h.routes,
		UserName: user.Name,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.sessions.SignOut(w, r); err != nil {
		h.log.Errorf("failed to clear session: %v", err)
	}

	http.Redirect(w, r, h.routes.Home, http.StatusSeeOther)
}

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, kind, text, destination string) {
	if err := h.sessions.AddFlash(w, r, kind, text); err != nil {
		h.log.Errorf("failed to set flash message: %v", err)
	}
	http.Redirect(w, r, destination, http.StatusSeeOther)
}
