package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warbler/handlers"
	"warbler/logger"
	"warbler/monitoring"
)

// SetupRoutes initializes all the application routes.
// The routing logic is isolated here.
func SetupRoutes(h *handlers.Handler) http.Handler {
	router := mux.NewRouter()

	// Public pages
	router.HandleFunc("/", h.Home).Methods("GET")
	router.HandleFunc("/signup", h.Signup).Methods("GET", "POST")
	router.HandleFunc("/login", h.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", h.Logout).Methods("GET")
	router.HandleFunc("/autocomplete", h.Autocomplete).Methods("GET")

	// User routes. Fixed paths come before the {id} patterns so mux does
	// not swallow them.
	router.HandleFunc("/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/users/profile", h.RequireAuth(h.EditProfile)).Methods("GET", "POST")
	router.HandleFunc("/users/delete", h.RequireAuth(h.DeleteUser)).Methods("POST")
	router.HandleFunc("/users/follow/{id:[0-9]+}", h.RequireAuth(h.Follow)).Methods("POST")
	router.HandleFunc("/users/stop-following/{id:[0-9]+}", h.RequireAuth(h.StopFollowing)).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", h.ShowUser).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/following", h.RequireAuth(h.ShowFollowing)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/followers", h.RequireAuth(h.ShowFollowers)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/likes", h.RequireAuth(h.ShowLikes)).Methods("GET")

	// Message routes
	router.HandleFunc("/messages/new", h.RequireAuth(h.NewMessage)).Methods("GET", "POST")
	router.HandleFunc("/messages/direct-messages", h.RequireAuth(h.DirectMessages)).Methods("GET")
	router.HandleFunc("/messages/direct-message/new/{id:[0-9]+}", h.RequireAuth(h.NewDirectMessage)).Methods("GET", "POST")
	router.HandleFunc("/messages/{id:[0-9]+}", h.ShowMessage).Methods("GET")
	router.HandleFunc("/messages/{id:[0-9]+}/delete", h.RequireAuth(h.DeleteMessage)).Methods("POST")
	router.HandleFunc("/messages/{id:[0-9]+}/like/add", h.RequireAuth(h.ToggleLike)).Methods("POST")

	// Follow request routes
	router.HandleFunc("/requests", h.RequireAuth(h.ShowRequests)).Methods("GET")
	router.HandleFunc("/requests/accept/{id:[0-9]+}", h.RequireAuth(h.AcceptRequest)).Methods("POST")
	router.HandleFunc("/requests/decline/{id:[0-9]+}", h.RequireAuth(h.DeclineRequest)).Methods("POST")
	router.HandleFunc("/requests/cancel/{id:[0-9]+}", h.RequireAuth(h.CancelRequest)).Methods("POST")

	// Static assets and metrics
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static"))))
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(h.NotFound)

	return monitoring.InstrumentHandler(logger.RequestLogger(router))
}
