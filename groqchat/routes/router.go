// groqchat/routes/router.go
package routes

import (
	"groqchat/groqchat/controllers"
	"groqchat/groqchat/middlewares"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Chat    *controllers.ChatController
	Archive *controllers.ArchiveController
	Health  *controllers.HealthController
}

func NewRouter(ctrls Controllers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		return map[string]string{"message": "Welcome to the Chat API."}, http.StatusOK, nil
	}))
	r.Mount("/health", HealthRoutes(ctrls.Health))
	r.Mount("/chat", ChatRoutes(ctrls.Chat, ctrls.Archive))
	return r
}
