package logger

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger.
func Init(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	logrus.Info("Logger initialized")
}

// slowRequestThreshold flags requests that spend too long on store I/O.
const slowRequestThreshold = 2 * time.Second

// RequestLogger tags every request with a fresh request id and logs its
// completion, warning when a request runs slow.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := logrus.WithFields(logrus.Fields{
			"request_id": uuid.New().String(),
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote_ip":  r.RemoteAddr,
		})

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		if duration > slowRequestThreshold {
			entry.WithField("duration", duration.String()).Warn("Slow request detected")
		} else {
			entry.WithField("duration", duration.String()).Info("Request completed")
		}
	})
}
