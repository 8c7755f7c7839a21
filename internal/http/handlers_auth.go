package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// AuthHandlers serves the authentication endpoints: login, logout, and
// the email verification and password reset flows.
type AuthHandlers struct {
	Svc          *service.AuthService
	CookieDomain string
	Logger       *slog.Logger
}

// Login authenticates form credentials and sets the session cookie.
// POST /api/auth/token.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, session, err := h.Svc.Login(r.Context(), username, password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setSessionCookie(w, r, session)
	WriteJSON(w, http.StatusOK, user)
}

// Logout ends the session. The cookie is cleared unconditionally, so
// even when the session store is unreachable the browser forgets the
// login.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.Svc.Logout(r.Context(), cookie.Value)
	}

	h.clearCookie(w, r, sessionCookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"detail": "logged out"})
}

// RequestEmailVerification sends a fresh verification link to the
// logged-in user.
// POST /api/auth/verify-email.
func (h *AuthHandlers) RequestEmailVerification(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	if err := h.Svc.RequestEmailVerification(r.Context(), user.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]string{"detail": "verification email sent"})
}

// ConfirmEmailVerification redeems a verification token from the emailed link.
// POST /api/auth/verify-email/confirm?token=...
func (h *AuthHandlers) ConfirmEmailVerification(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.ConfirmEmailVerification(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// RequestPasswordReset emails a reset link. The response is the same
// whether or not the address has an account.
// POST /api/auth/forgot-password.
func (h *AuthHandlers) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]string{
		"detail": "if the address has an account, a reset email was sent",
	})
}

// ConfirmPasswordReset redeems a reset token and sets the new password.
// POST /api/auth/forgot-password/confirm?token=...
func (h *AuthHandlers) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewPassword string `json:"new_password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.ConfirmPasswordReset(r.Context(), r.URL.Query().Get("token"), req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"detail": "password updated"})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
