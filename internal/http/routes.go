package httpx

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/WebbPulse/carmodpicker/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Cars       *service.CarService
	BuildLists *service.BuildListService
	Parts      *service.PartService

	CookieDomain string
	// StaticDir holds the built SPA. When set, page routes serve its
	// index.html and /assets/ serves the bundle.
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter creates and configures the HTTP router. The session
// resolver wraps everything, so by the time a guard or handler runs the
// request has already been resolved to a user or to anonymous.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	userHandlers := &UserHandlers{Svc: services.Users, Auth: services.Auth}
	carHandlers := &CarHandlers{Svc: services.Cars}
	buildListHandlers := &BuildListHandlers{Svc: services.BuildLists}
	partHandlers := &PartHandlers{Svc: services.Parts}

	registerAuthRoutes(mux, authHandlers)
	registerUserRoutes(mux, userHandlers)

	// Reading the catalog needs a login; changing it needs a verified
	// email on top.
	read := Guard(RequireAuthAPI())
	write := Guard(RequireAuthAPI(), RequireVerifiedAPI())

	registerCRUD(mux, crudRoutes{
		Base:    "/api/cars",
		Create:  carHandlers.Create,
		List:    carHandlers.ListMine,
		GetByID: carHandlers.Get,
		Update:  carHandlers.Update,
		Delete:  carHandlers.Delete,
		Read:    read,
		Write:   write,
	})
	// Backs the public /user/{id} page alongside GET /api/users/{id}.
	mux.Handle("GET /api/cars/user/{id}", http.HandlerFunc(carHandlers.ListByUser))

	registerCRUD(mux, crudRoutes{
		Base:    "/api/build-lists",
		Create:  buildListHandlers.Create,
		List:    nil,
		GetByID: buildListHandlers.Get,
		Update:  buildListHandlers.Update,
		Delete:  buildListHandlers.Delete,
		Read:    read,
		Write:   write,
	})
	mux.Handle("GET /api/build-lists/car/{id}", read(http.HandlerFunc(buildListHandlers.ListByCar)))

	registerCRUD(mux, crudRoutes{
		Base:    "/api/parts",
		Create:  partHandlers.Create,
		List:    nil,
		GetByID: partHandlers.Get,
		Update:  partHandlers.Update,
		Delete:  partHandlers.Delete,
		Read:    read,
		Write:   write,
	})
	mux.Handle("GET /api/parts/build-list/{id}", read(http.HandlerFunc(partHandlers.ListByBuildList)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerPageRoutes(mux, services.StaticDir)

	return Chain(mux,
		Recover(logger),
		Logging(logger),
		ResolveSession(services.Auth),
	)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /api/auth/token", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("POST /api/auth/verify-email",
		Guard(RequireAuthAPI())(http.HandlerFunc(h.RequestEmailVerification)))
	mux.Handle("POST /api/auth/verify-email/confirm", http.HandlerFunc(h.ConfirmEmailVerification))
	mux.Handle("POST /api/auth/forgot-password", http.HandlerFunc(h.RequestPasswordReset))
	mux.Handle("POST /api/auth/forgot-password/confirm", http.HandlerFunc(h.ConfirmPasswordReset))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	auth := Guard(RequireAuthAPI())
	mux.Handle("POST /api/users", http.HandlerFunc(h.Create))
	mux.Handle("GET /api/users/me", auth(http.HandlerFunc(h.Me)))
	// Profile views back the public /user/{id} page, so no guard.
	mux.Handle("GET /api/users/{id}", http.HandlerFunc(h.Get))
	mux.Handle("PUT /api/users/{id}", auth(http.HandlerFunc(h.Update)))
}

// crudRoutes groups the handlers for one resource. List is optional;
// some resources only list through a parent (e.g. parts by build list).
type crudRoutes struct {
	Base    string
	Create  http.HandlerFunc
	List    http.HandlerFunc
	GetByID http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
	// Read wraps GET routes, Write wraps mutating routes.
	Read  func(http.Handler) http.Handler
	Write func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty")
	}
	if cfg.Create == nil || cfg.GetByID == nil || cfg.Update == nil || cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base)
	}

	wrap := func(mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
		if mw != nil {
			return mw(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Write, cfg.Create))
	if cfg.List != nil {
		mux.Handle("GET "+cfg.Base, wrap(cfg.Read, cfg.List))
	}
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.Read, cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Write, cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Write, cfg.Delete))
}

// registerPageRoutes wires the SPA page routes with their browser
// guards. The SPA handles rendering; the server enforces who may load
// each page and where failed loads bounce to.
func registerPageRoutes(mux *http.ServeMux, staticDir string) {
	guestOnly := Guard(RequireGuestPage())
	authOnly := Guard(RequireAuthPage())
	verifiedOnly := Guard(RequireAuthPage(), RequireVerifiedPage())

	index := spaIndexHandler(staticDir)

	mux.Handle("GET /login", guestOnly(index))
	mux.Handle("GET /register", guestOnly(index))
	mux.Handle("GET /forgot-password", guestOnly(index))
	mux.Handle("GET /forgot-password/confirm", index)
	mux.Handle("GET /verify-email", authOnly(index))
	mux.Handle("GET /verify-email/confirm", index)
	mux.Handle("GET /profile", verifiedOnly(index))
	mux.Handle("GET /builder", verifiedOnly(index))
	mux.Handle("GET /user/{id}", index)
	mux.Handle("GET /{$}", index)

	if staticDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(staticDir, "assets"))))
		mux.Handle("GET /assets/", assets)
	}
}

// spaIndexHandler serves the SPA entry point. Without a static dir it
// falls back to a bare shell so the API is usable standalone.
func spaIndexHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if staticDir != "" {
			indexPath := filepath.Join(staticDir, "index.html")
			if _, err := os.Stat(indexPath); err == nil {
				http.ServeFile(w, r, indexPath)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<!DOCTYPE html><html><head><title>CarModPicker</title></head><body><div id=\"root\"></div></body></html>"))
	})
}
