package middleware

import (
	"context"
	"log"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/estudaplan/estudaplan-api/config"
	"github.com/estudaplan/estudaplan-api/models"
)

type contextKey string

const userKey = contextKey("user")

// WithUser attaches a registry user to the context. Exported for tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the registry user attached by SyncUser.
func UserFromContext(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}

// SyncUser ensures a registry row exists for the token subject and
// attaches it to the request context. Nicknames are refreshed when the
// token carries a new one; users created before PublicID existed get
// one backfilled lazily.
func SyncUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			http.Error(w, "No token subject found", http.StatusUnauthorized)
			return
		}

		subject := claims.RegisteredClaims.Subject
		nickname := ""
		if custom, ok := claims.CustomClaims.(*CustomClaims); ok && custom != nil {
			nickname = custom.Nickname
		}

		var user models.User
		result := config.Database.Where("auth0_id = ?", subject).First(&user)
		if result.Error != nil {
			publicID, err := gonanoid.New()
			if err != nil {
				http.Error(w, "Failed to create user", http.StatusInternalServerError)
				return
			}
			user = models.User{Auth0ID: subject, Nickname: nickname, PublicID: publicID}
			if err := config.Database.Create(&user).Error; err != nil {
				http.Error(w, "Failed to create user", http.StatusInternalServerError)
				log.Println("Database creation error:", err)
				return
			}
			log.Printf("Created new user: %s\n", user.PublicID)
		} else {
			if nickname != "" && user.Nickname != nickname {
				user.Nickname = nickname
				if err := config.Database.Save(&user).Error; err != nil {
					http.Error(w, "Failed to update user", http.StatusInternalServerError)
					log.Println("Database update error:", err)
					return
				}
			}
			if user.PublicID == "" {
				publicID, err := gonanoid.New()
				if err == nil {
					user.PublicID = publicID
					config.Database.Model(&user).Update("public_id", publicID)
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
	})
}
