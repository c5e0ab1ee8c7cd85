package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/estudaplan/estudaplan-api/auth"
	"github.com/estudaplan/estudaplan-api/config"
)

// CustomClaims carries the nickname claim Auth0 adds to access tokens.
type CustomClaims struct {
	Nickname string `json:"nickname"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// EnsureValidToken validates bearer tokens against the configured Auth0
// tenant. Without a tenant (local development) it falls back to the
// cookie-token check; both paths leave a *validator.ValidatedClaims in
// the request context so downstream code is uniform.
func EnsureValidToken() func(http.Handler) http.Handler {
	if config.Env.Auth0Domain == "" {
		log.Println("AUTH0_DOMAIN not set, using local cookie tokens")
		return localTokenMiddleware
	}

	issuerURL, err := url.Parse("https://" + config.Env.Auth0Domain + "/")
	if err != nil {
		log.Fatalf("failed to parse the issuer url: %v", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{config.Env.Auth0Audience},
		validator.WithCustomClaims(func() validator.CustomClaims { return &CustomClaims{} }),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("failed to set up the jwt validator: %v", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("jwt validation error: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"failed to validate token"}`))
	}

	mw := jwtmiddleware.New(jwtValidator.ValidateToken, jwtmiddleware.WithErrorHandler(errorHandler))
	return func(next http.Handler) http.Handler {
		return mw.CheckJWT(next)
	}
}

func localTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		subject, nickname, err := auth.ParseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		claims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: subject},
			CustomClaims:     &CustomClaims{Nickname: nickname},
		}
		ctx := context.WithValue(r.Context(), jwtmiddleware.ContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
