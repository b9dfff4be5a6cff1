package auth

import (
	"net/http"

	"github.com/saulo-duarte/interview-coach/internal/config"
)

// CookieName is the cookie AuthMiddleware falls back to when no bearer
// header is present.
const CookieName = "jwt"

type Handler struct {
	cookieDomain string
	secure       bool
}

// NewHandler scopes the session cookie to cookieDomain. With secure unset
// the cookie is also cleared over plain HTTP for local development.
func NewHandler(cookieDomain string, secure bool) *Handler {
	return &Handler{cookieDomain: cookieDomain, secure: secure}
}

// expiredCookie matches the attributes the cookie was issued with;
// browsers only drop a cookie when name, domain and path agree.
func (h *Handler) expiredCookie() *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	}
}

// Logout godoc
//
//	@Summary	Clear the session cookie
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, err := r.Cookie(CookieName)
	config.WithContext(r.Context()).
		WithField("had_cookie", err == nil).
		Debug("Clearing session cookie")

	http.SetCookie(w, h.expiredCookie())
	config.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
