package api

import (
	"net/http"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/rs/zerolog"
)

// SessionClaims is the payload of the admin session token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthHandler exchanges a Google ID token for an admin session token.
type AuthHandler struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log.With().Str("handler", "auth").Logger(),
	}
}

type googleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleSignIn handles POST /v1/auth/google.
// The Google ID token is verified against the configured client ID, the
// email is checked against the admin allow-list, and a session token is
// issued. Identities outside the allow-list get 403 and no session.
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req googleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_token is required"})
		return
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{h.cfg.Auth.GoogleClientID}); err != nil {
		h.log.Warn().Err(err).Msg("Google ID token verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to decode Google ID token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode ID token"})
		return
	}

	if !h.cfg.Auth.IsAdmin(claimSet.Email) {
		h.log.Warn().Str("email", claimSet.Email).Msg("Sign-in refused: not on allow-list")
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is not authorized"})
		return
	}

	now := time.Now()
	claims := SessionClaims{
		Email: claimSet.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.Auth.SessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Auth.SessionSecret))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.log.Info().Str("email", claimSet.Email).Msg("Admin signed in")
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"email":      claimSet.Email,
		"expires_at": claims.ExpiresAt.Format(time.RFC3339),
	})
}

// adminAuthMiddleware validates the session token and re-checks the
// allow-list, so removing an email revokes access without waiting for the
// token to expire.
func adminAuthMiddleware(cfg *config.AuthConfig, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SessionSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		if !cfg.IsAdmin(claims.Email) {
			log.Warn().Str("email", claims.Email).Msg("Session refused: removed from allow-list")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This account is not authorized"})
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
