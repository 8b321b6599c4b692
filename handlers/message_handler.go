package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"warbler/models"
	"warbler/monitoring"
	"warbler/repositories"
)

// Home shows the timeline for a logged-in user, or the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.render(w, r, "home_anon", &pageData{})
		return
	}

	messages, err := h.Messages.Timeline(user.ID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "home", &pageData{
		CurrentUser: user,
		Messages:    messages,
		Liked:       h.likedSet(user.ID, messages),
	})
}

// NewMessage handles GET (form) and POST (create).
func (h *Handler) NewMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "message_new", &pageData{})
		return
	}

	form := messageForm{Text: r.FormValue("text")}
	if msgs := validateForm(form); msgs != nil {
		monitoring.BadRequests.WithLabelValues("message_new").Inc()
		h.render(w, r, "message_new", &pageData{Errors: msgs, Form: map[string]string{"Text": form.Text}})
		return
	}

	userID, _ := h.Sessions.CurrentUserID(r)
	message := models.Message{Text: form.Text, UserID: userID}
	if err := h.Messages.Create(&message); err != nil {
		logrus.WithError(err).Error("Failed to create message")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) ShowMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	message, err := h.Messages.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "message_show", &pageData{Message: message})
}

// DeleteMessage removes one of the current user's own messages.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	err := h.Messages.Delete(id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", userID), http.StatusFound)
}

// ToggleLike flips the like state for the current user on a message.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	_, err := h.Likes.Toggle(userID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.LikesToggled.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// likedSet marks which of the listed messages the viewer has liked, for
// rendering the like buttons. Empty for anonymous viewers.
func (h *Handler) likedSet(viewerID uint, messages []models.Message) map[uint]bool {
	liked := map[uint]bool{}
	if viewerID == 0 {
		return liked
	}
	for _, m := range messages {
		if ok, err := h.Likes.IsLiked(viewerID, m.ID); err == nil && ok {
			liked[m.ID] = true
		}
	}
	return liked
}
