package rest

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"formbuilder/internal/service"
	"formbuilder/internal/transport/rest/handler"
	"formbuilder/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	FormService     *service.FormService
	ResponseService *service.ResponseService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	formHandler := handler.NewFormHandler(c.FormService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes: register/login, form fill, anonymous submission
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET")
	api.HandleFunc("/forms/{formId}/render", formHandler.Render).Methods("GET")
	api.HandleFunc("/forms/{formId}/responses", responseHandler.Submit).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Owner routes (require auth)
	ownerRoutes := api.NewRoute().Subrouter()
	ownerRoutes.Use(authMW.RequireUser)

	ownerRoutes.HandleFunc("/forms", formHandler.Create).Methods("POST")
	ownerRoutes.HandleFunc("/forms", formHandler.List).Methods("GET")
	ownerRoutes.HandleFunc("/forms/{formId}", formHandler.Update).Methods("PUT")
	ownerRoutes.HandleFunc("/forms/{formId}", formHandler.Delete).Methods("DELETE")
	ownerRoutes.HandleFunc("/forms/{formId}/responses", responseHandler.List).Methods("GET")

	// CORS
	allowedOrigins := []string{"*"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}
	corsMW := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return corsMW.Handler(r)
}
