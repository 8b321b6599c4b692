package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"warbler/models"
	"warbler/monitoring"
	"warbler/repositories"
)

// Signup handles GET (form) and POST (create account + login).
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "signup", &pageData{})
		return
	}

	form := signupForm{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		ImageURL: r.FormValue("image_url"),
	}
	if msgs := validateForm(form); msgs != nil {
		monitoring.BadRequests.WithLabelValues("signup").Inc()
		h.render(w, r, "signup", &pageData{
			Errors: msgs,
			Form:   map[string]string{"Username": form.Username, "Email": form.Email, "ImageURL": form.ImageURL},
		})
		return
	}

	user, err := h.Users.Signup(form.Username, form.Email, form.Password, form.ImageURL)
	if errors.Is(err, repositories.ErrDuplicate) {
		monitoring.BadRequests.WithLabelValues("signup").Inc()
		h.Sessions.Flash(w, r, "Username already taken")
		h.render(w, r, "signup", &pageData{
			Form: map[string]string{"Username": form.Username, "Email": form.Email, "ImageURL": form.ImageURL},
		})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to create user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	monitoring.SignupSuccess.Inc()
	h.Sessions.Login(w, r, user.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login handles GET (form) and POST (authenticate).
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "login", &pageData{})
		return
	}

	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if msgs := validateForm(form); msgs != nil {
		monitoring.LoginFailure.WithLabelValues("validation").Inc()
		h.render(w, r, "login", &pageData{Errors: msgs, Form: map[string]string{"Username": form.Username}})
		return
	}

	user, ok, err := h.Users.Authenticate(form.Username, form.Password)
	if err != nil {
		logrus.WithError(err).Error("Login lookup failed")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if !ok {
		monitoring.LoginFailure.WithLabelValues("bad_credentials").Inc()
		h.Sessions.Flash(w, r, "Invalid credentials.")
		h.render(w, r, "login", &pageData{Form: map[string]string{"Username": form.Username}})
		return
	}

	monitoring.LoginSuccess.Inc()
	h.Sessions.Login(w, r, user.ID)
	h.redirectWithFlash(w, r, "/", fmt.Sprintf("Hello, %s!", user.Username))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(w, r)
	h.redirectWithFlash(w, r, "/login", "You successfully logged out.")
}

// Autocomplete returns the username list as JSON, queried per request.
func (h *Handler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.Users.Usernames()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usernames)
}

// ListUsers shows every user, or those whose username matches ?q=.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	users, err := h.Users.Search(q)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "users_index", &pageData{Users: users, Query: q})
}

// ShowUser renders a profile with the private-account visibility gate
// applied to its messages.
func (h *Handler) ShowUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	user, err := h.Users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	var viewerID uint
	var following bool
	if viewer := h.currentUser(r); viewer != nil {
		viewerID = viewer.ID
		following, err = h.Follows.IsFollowing(viewerID, id)
		if err != nil {
			logrus.WithError(err).Error("Failed to check follow status")
		}
	}

	messages, err := h.Messages.VisibleMessages(id, viewerID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "user_show", &pageData{
		User:        user,
		Messages:    messages,
		IsFollowing: following,
		Liked:       h.likedSet(viewerID, messages),
	})
}

func (h *Handler) ShowFollowing(w http.ResponseWriter, r *http.Request) {
	h.renderFollowList(w, r, "following")
}

func (h *Handler) ShowFollowers(w http.ResponseWriter, r *http.Request) {
	h.renderFollowList(w, r, "followers")
}

func (h *Handler) renderFollowList(w http.ResponseWriter, r *http.Request, page string) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	user, err := h.Users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	var users []models.User
	if page == "following" {
		users, err = h.Follows.Following(id)
	} else {
		users, err = h.Follows.Followers(id)
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, page, &pageData{User: user, Users: users})
}

// ShowLikes lists the messages a user has liked.
func (h *Handler) ShowLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	user, err := h.Users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	messages, err := h.Likes.LikedByUser(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "likes", &pageData{User: user, Messages: messages})
}

// Follow starts following the target, or sends a follow request when the
// target account is private.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	err := h.Follows.RequestFollow(userID, id)
	switch {
	case errors.Is(err, repositories.ErrSelfFollow):
		h.redirectWithFlash(w, r, "/", "You cannot follow yourself.")
		return
	case errors.Is(err, repositories.ErrNotFound):
		h.NotFound(w, r)
		return
	case err != nil:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.FollowRequests.WithLabelValues("follow").Inc()

	target, err := h.Users.FindByID(id)
	if err == nil && target.Private {
		h.redirectWithFlash(w, r, "/", "Follow request sent.")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", userID), http.StatusFound)
}

// StopFollowing removes the follow edge; harmless when none exists.
func (h *Handler) StopFollowing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	userID, _ := h.Sessions.CurrentUserID(r)

	if err := h.Follows.Unfollow(userID, id); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.FollowRequests.WithLabelValues("unfollow").Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", userID), http.StatusFound)
}

// EditProfile updates the profile after re-checking the current password.
func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.redirectWithFlash(w, r, "/", "Access unauthorized.")
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, "edit_profile", &pageData{User: user})
		return
	}

	form := profileForm{
		Username:       r.FormValue("username"),
		Email:          r.FormValue("email"),
		ImageURL:       r.FormValue("image_url"),
		HeaderImageURL: r.FormValue("header_image_url"),
		Bio:            r.FormValue("bio"),
		Location:       r.FormValue("location"),
		Password:       r.FormValue("password"),
		Private:        r.FormValue("private") != "",
	}
	if msgs := validateForm(form); msgs != nil {
		h.render(w, r, "edit_profile", &pageData{User: user, Errors: msgs})
		return
	}

	_, ok, err := h.Users.Authenticate(user.Username, form.Password)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.redirectWithFlash(w, r, "/", "Not authenticated")
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	user.ImageURL = form.ImageURL
	user.HeaderImageURL = form.HeaderImageURL
	user.Bio = form.Bio
	user.Location = form.Location
	user.Private = form.Private

	if err := h.Users.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			h.Sessions.Flash(w, r, "Username already taken")
			h.render(w, r, "edit_profile", &pageData{User: user})
			return
		}
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

// DeleteUser removes the account and everything it owns, then logs out.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.Sessions.CurrentUserID(r)

	if err := h.Users.Delete(userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to delete user")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.Sessions.Logout(w, r)
	http.Redirect(w, r, "/signup", http.StatusFound)
}
