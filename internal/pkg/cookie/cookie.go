package cookie

import (
	"fmt"
	"net/http"
	"time"

	"table-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

const tokenKey = "t"

// ConfirmationCookie carries the pending-confirmation token across the
// POST-redirect-GET. The value is signed and encrypted.
type ConfirmationCookie struct {
	sc     *securecookie.SecureCookie
	cfg    config.SessionConfig
	maxAge time.Duration
}

func NewConfirmationCookie(cfg config.SessionConfig, maxAge time.Duration) (*ConfirmationCookie, error) {
	hashKey, blockKey, err := cfg.Keys()
	if err != nil {
		return nil, fmt.Errorf("cookie keys: %w", err)
	}
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(maxAge.Seconds()))
	return &ConfirmationCookie{sc: sc, cfg: cfg, maxAge: maxAge}, nil
}

func (cc *ConfirmationCookie) Set(c *gin.Context, token string) error {
	encoded, err := cc.sc.Encode(cc.cfg.CookieName, map[string]string{tokenKey: token})
	if err != nil {
		return fmt.Errorf("encode confirmation cookie: %w", err)
	}
	c.SetSameSite(getSameSite(cc.cfg.SameSite))
	c.SetCookie(
		cc.cfg.CookieName,
		encoded,
		int(cc.maxAge.Seconds()),
		"/",
		"",
		cc.cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

// Read returns the token, or false when the cookie is missing, tampered with or expired.
func (cc *ConfirmationCookie) Read(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(cc.cfg.CookieName)
	if err != nil || raw == "" {
		return "", false
	}
	value := map[string]string{}
	if err := cc.sc.Decode(cc.cfg.CookieName, raw, &value); err != nil {
		return "", false
	}
	token := value[tokenKey]
	return token, token != ""
}

func (cc *ConfirmationCookie) Clear(c *gin.Context) {
	c.SetSameSite(getSameSite(cc.cfg.SameSite))
	c.SetCookie(cc.cfg.CookieName, "", -1, "/", "", cc.cfg.Secure, true)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
