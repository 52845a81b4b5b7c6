package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth"
	"github.com/thomashuynhqn/Survey-API/app"
	"github.com/thomashuynhqn/Survey-API/httpx"
	"github.com/thomashuynhqn/Survey-API/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	root.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, r, "Welcome to the Survey API.")
	})

	root.Route("/login", func(r chi.Router) {
		r.Post("/", PasswordLogin(app))
		r.Post("/google", GoogleLogin(app))
	})

	root.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(app.TokenAuth), middlewares.Authenticator)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", ListCampaigns(app))
			r.Get(`/{id:^\d+$}`, GetCampaignById(app))
		})

		r.Route("/groupQuestion", func(r chi.Router) {
			r.Get("/", ListGroupQuestions(app))
			r.Get(`/{id:^\d+$}`, GetGroupQuestionById(app))
			r.Post("/", SaveGroupQuestion(app))
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", ListQuestions(app))
			r.Get(`/{id:^\d+$}`, GetQuestionById(app))
		})

		r.Post("/answers", SaveAnswers(app))
	})

	return root
}
