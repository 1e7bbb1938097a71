package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"github.com/Abdullah403/lost-and-found/internal/items"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// UploadStore persists uploaded images.
type UploadStore interface {
	CreateUpload(ctx context.Context, u *model.Upload) error
	GetUpload(ctx context.Context, name string) (*model.Upload, error)
}

// TokenStore tracks revoked session tokens.
type TokenStore interface {
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Backend is everything the API persists. Implemented by the SQLite and
// MongoDB stores.
type Backend interface {
	items.Store
	UserStore
	UploadStore
	TokenStore
	Ping(ctx context.Context) error
}

// Options configures the router.
type Options struct {
	JWTSecret      string
	AdminEmail     string
	CORSOrigins    []string
	CookieSecure   bool
	UploadMaxBytes int64
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(backend Backend, opts Options) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{
		Users:        backend,
		Tokens:       backend,
		JWTSecret:    opts.JWTSecret,
		AdminEmail:   opts.AdminEmail,
		CookieSecure: opts.CookieSecure,
	}
	itemsHandler := &ItemsHandler{Service: items.NewService(backend)}
	uploadsHandler := &UploadsHandler{Uploads: backend, MaxBytes: opts.UploadMaxBytes}

	authMW := AuthMiddleware(opts.JWTSecret, backend)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Accounts.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Items: read (anyone), write (owner or admin, enforced by the service).
	mux.HandleFunc("GET /api/categories", itemsHandler.Categories)
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/verification", authMW(requireAdmin(http.HandlerFunc(itemsHandler.SetVerified))))

	// Images.
	mux.Handle("POST /api/upload", authMW(http.HandlerFunc(uploadsHandler.Upload)))
	mux.HandleFunc("GET /uploads/{name}", uploadsHandler.Serve)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := backend.Ping(ctx); err != nil {
			jsonResponse(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
			return
		}
		jsonResponse(w, http.StatusOK, map[string]any{"ok": true})
	})

	var handler http.Handler = mux
	if len(opts.CORSOrigins) > 0 {
		handler = cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})(handler)
	}
	return RecoverMiddleware(handler)
}
