package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Everything under /users and /posts requires an
// access token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withTracing, h.withLogging)
	router.Use(withGZipRequest, middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/version", h.getServerVersion)
	router.Get("/health", h.health)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.getUsers)
			r.Get("/{user_id}", h.getUserByID)
			r.Put("/{user_id}", h.updateUser)
			r.Delete("/{user_id}", h.deleteUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.getPosts)
			r.Post("/", h.createPost)
			r.Get("/{post_id}", h.getPostByID)
			r.Delete("/{post_id}", h.deletePost)
			r.Post("/{post_id}/view", h.viewPost)
			r.Post("/{post_id}/like", h.likePost)
			r.Delete("/{post_id}/like", h.unlikePost)
		})
	})

	return router
}
