package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"warbler/auth"
	"warbler/models"
	"warbler/repositories"
	"warbler/web"
)

// Handler holds every dependency the HTTP layer needs. Handlers are thin
// glue: decode the form, call a repository, flash, render or redirect.
type Handler struct {
	Users    repositories.UserStore
	Messages repositories.MessageStore
	Follows  repositories.FollowStore
	Likes    repositories.LikeStore
	DMs      repositories.DirectMessageStore
	Sessions *auth.Manager

	tmpl *template.Template
}

func New(
	users repositories.UserStore,
	messages repositories.MessageStore,
	follows repositories.FollowStore,
	likes repositories.LikeStore,
	dms repositories.DirectMessageStore,
	sessions *auth.Manager,
) (*Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		Users:    users,
		Messages: messages,
		Follows:  follows,
		Likes:    likes,
		DMs:      dms,
		Sessions: sessions,
		tmpl:     tmpl,
	}, nil
}

// pageData is the single bag of template data; each page fills what it
// needs.
type pageData struct {
	CurrentUser *models.User
	Flashes     []string

	User         *models.User
	Users        []models.User
	Messages     []models.Message
	Message      *models.Message
	Liked        map[uint]bool
	IsFollowing  bool
	Requests     []models.FollowRequest
	SentRequests []models.FollowRequest
	Inbox        []models.DirectMessage
	Outbox       []models.DirectMessage
	Recipient    *models.User

	Form   map[string]string
	Errors map[string]string
	Query  string
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data *pageData) {
	if data == nil {
		data = &pageData{}
	}
	if data.CurrentUser == nil {
		data.CurrentUser = h.currentUser(r)
	}
	data.Flashes = h.Sessions.Flashes(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("Failed to render template")
	}
}

// currentUser resolves the logged-in user, or nil.
func (h *Handler) currentUser(r *http.Request) *models.User {
	id, ok := h.Sessions.CurrentUserID(r)
	if !ok {
		return nil
	}
	user, err := h.Users.FindByID(id)
	if err != nil {
		return nil
	}
	return user
}

// RequireAuth redirects to the home page with a flash when no user is
// logged in.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.Sessions.CurrentUserID(r); !ok {
			h.Sessions.Flash(w, r, "Access unauthorized.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, r, "404", &pageData{})
}

// pathID pulls the numeric {id} route variable.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	h.Sessions.Flash(w, r, message)
	http.Redirect(w, r, target, http.StatusFound)
}
