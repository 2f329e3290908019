package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/hoardspace/model"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

func (s *RestHandler) setCookie(w http.ResponseWriter, name, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setAuthCookies writes whichever tokens the result carries.
func (s *RestHandler) setAuthCookies(w http.ResponseWriter, res *model.AuthResult) {
	if res.AccessToken != "" {
		s.setCookie(w, accessTokenCookie, res.AccessToken, res.AccessTokenExpiresAt)
	}
	if res.RefreshToken != "" {
		s.setCookie(w, refreshTokenCookie, res.RefreshToken, res.RefreshTokenExpiresAt)
	}
}

func (s *RestHandler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.config.IsProduction(),
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
