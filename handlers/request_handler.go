package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"warbler/monitoring"
	"warbler/repositories"
)

// ShowRequests lists pending follow requests: received and sent.
func (h *Handler) ShowRequests(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.Sessions.CurrentUserID(r)

	received, err := h.Follows.PendingReceived(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	sent, err := h.Follows.PendingSent(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "requests", &pageData{Requests: received, SentRequests: sent})
}

// AcceptRequest approves a pending follow request from the user in the path.
func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	err := h.Follows.AcceptRequest(userID, requesterID)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.FollowRequests.WithLabelValues("accept").Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d/followers", userID), http.StatusFound)
}

// DeclineRequest rejects a pending follow request; the row is kept.
func (h *Handler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	err := h.Follows.DeclineRequest(userID, requesterID)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.FollowRequests.WithLabelValues("decline").Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d/followers", userID), http.StatusFound)
}

// CancelRequest withdraws the current user's own pending request to the
// user in the path. Harmless when no pending request exists.
func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	if err := h.Follows.CancelRequest(userID, targetID); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.FollowRequests.WithLabelValues("cancel").Inc()
	http.Redirect(w, r, "/requests", http.StatusFound)
}
