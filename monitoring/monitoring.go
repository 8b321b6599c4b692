package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	SignupSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "signup_success_total",
		Help: "Total successful signups",
	})

	LoginSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_success_total",
		Help: "Total successful login attempts",
	})

	LoginFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_failure_total",
		Help: "Total failed login attempts",
	}, []string{"reason"})

	MessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messages_posted_total",
		Help: "Total messages successfully posted",
	})

	FollowRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "follow_requests_total",
		Help: "Total follow state changes",
	}, []string{"action"})

	LikesToggled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "likes_toggled_total",
		Help: "Total like toggles",
	})

	DirectMessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "direct_messages_sent_total",
		Help: "Total direct messages sent",
	})

	BadRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bad_requests_total",
		Help: "Total rejected requests",
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SignupSuccess)
	prometheus.MustRegister(LoginSuccess)
	prometheus.MustRegister(LoginFailure)
	prometheus.MustRegister(MessagesPosted)
	prometheus.MustRegister(FollowRequests)
	prometheus.MustRegister(LikesToggled)
	prometheus.MustRegister(DirectMessagesSent)
	prometheus.MustRegister(BadRequests)
}

// statusRecordingWriter captures the status code written by a handler.
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler tracks request timing and status codes.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		RequestDuration.
			WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode)).
			Observe(duration)
	})
}
