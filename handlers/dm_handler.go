package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"warbler/monitoring"
	"warbler/repositories"
)

// DirectMessages shows the current user's inbox and outbox.
func (h *Handler) DirectMessages(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.Sessions.CurrentUserID(r)

	inbox, err := h.DMs.Inbox(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	outbox, err := h.DMs.Outbox(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "direct_messages", &pageData{Inbox: inbox, Outbox: outbox})
}

// NewDirectMessage handles GET (form) and POST (send) for a private message
// to the user in the path.
func (h *Handler) NewDirectMessage(w http.ResponseWriter, r *http.Request) {
	recipientID, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	recipient, err := h.Users.FindByID(recipientID)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, "direct_message_new", &pageData{Recipient: recipient})
		return
	}

	form := directMessageForm{Text: r.FormValue("text")}
	if msgs := validateForm(form); msgs != nil {
		monitoring.BadRequests.WithLabelValues("direct_message_new").Inc()
		h.render(w, r, "direct_message_new", &pageData{Recipient: recipient, Errors: msgs})
		return
	}

	userID, _ := h.Sessions.CurrentUserID(r)
	if _, err := h.DMs.Send(userID, recipientID, form.Text); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.DirectMessagesSent.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d", userID), http.StatusFound)
}
