package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogger логирует каждый запрос: метод, путь, код ответа и длительность
func RequestLogger(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(started)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			default:
				log.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
