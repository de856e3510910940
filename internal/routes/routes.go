package routes

import (
	"net/http"

	"penlink/internal/handlers"
	"penlink/internal/middleware"
	"penlink/internal/models"
	"penlink/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Categories *handlers.CategoryHandler
	Posts      *handlers.PostHandler
	Comments   *handlers.CommentHandler
	Contact    *handlers.ContactHandler
	Stats      *handlers.StatsHandler
}

type Options struct {
	JWTSecret string
	// PostCreateRole: "user" ise oturum açmış herkes, "admin" ise yalnızca admin yazı oluşturur.
	PostCreateRole string
}

func InitRoutes(router *mux.Router, h Handlers, opts Options) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recoverer)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	api := router.PathPrefix("/api").Subrouter()

	// --- Herkese açık ---
	api.HandleFunc("/auth/register", h.Auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	api.HandleFunc("/categories", h.Categories.List).Methods("GET")
	api.HandleFunc("/categories/{id:[0-9]+}", h.Categories.GetByID).Methods("GET")
	api.HandleFunc("/categories/slug/{slug}", h.Categories.GetBySlug).Methods("GET")

	api.HandleFunc("/posts", h.Posts.List).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", h.Posts.GetByID).Methods("GET")

	api.HandleFunc("/comments/post/{postId:[0-9]+}", h.Comments.ListByPost).Methods("GET")

	api.HandleFunc("/contact", h.Contact.Submit).Methods("POST")

	api.HandleFunc("/statistics/posts-per-category", h.Stats.PostsPerCategory).Methods("GET")

	// --- Oturum isteğe bağlı (anonim yorum) ---
	optional := api.PathPrefix("").Subrouter()
	optional.Use(middleware.OptionalJWTAuth(opts.JWTSecret))
	optional.HandleFunc("/posts/{id:[0-9]+}/comments", h.Posts.AddComment).Methods("POST")
	optional.HandleFunc("/comments/post/{postId:[0-9]+}", h.Comments.Create).Methods("POST")

	// --- JWT zorunlu ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(opts.JWTSecret))

	protected.HandleFunc("/auth/me", h.Auth.Me).Methods("GET")
	protected.HandleFunc("/posts/{id:[0-9]+}/like", h.Posts.Like).Methods("POST")
	protected.HandleFunc("/comments/{id:[0-9]+}/like", h.Comments.Like).Methods("POST")
	protected.HandleFunc("/comments/{id:[0-9]+}", h.Comments.Delete).Methods("DELETE")

	authors := protected.PathPrefix("").Subrouter()
	authors.Use(postCreateGate(opts.PostCreateRole))
	authors.HandleFunc("/posts", h.Posts.Create).Methods("POST")

	// --- Yalnızca admin ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.OnlyRole(models.RoleAdmin))

	admin.HandleFunc("/categories", h.Categories.Create).Methods("POST")
	admin.HandleFunc("/categories/{id:[0-9]+}", h.Categories.Update).Methods("PUT")
	admin.HandleFunc("/categories/{id:[0-9]+}", h.Categories.Delete).Methods("DELETE")

	admin.HandleFunc("/posts/{id:[0-9]+}", h.Posts.Update).Methods("PUT")
	admin.HandleFunc("/posts/{id:[0-9]+}", h.Posts.Delete).Methods("DELETE")

	admin.HandleFunc("/contact", h.Contact.List).Methods("GET")
	admin.HandleFunc("/contact/{id:[0-9]+}", h.Contact.GetByID).Methods("GET")
	admin.HandleFunc("/contact/{id:[0-9]+}", h.Contact.Delete).Methods("DELETE")

	admin.HandleFunc("/statistics/dashboard", h.Stats.Dashboard).Methods("GET")
}

func postCreateGate(role string) mux.MiddlewareFunc {
	if role == models.RoleAdmin {
		return middleware.OnlyRole(models.RoleAdmin)
	}
	return middleware.AnyRole(models.RoleUser, models.RoleAdmin)
}
