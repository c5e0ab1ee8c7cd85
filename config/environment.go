package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment holds the process configuration, read once at startup
// after the .env file has been loaded.
type Environment struct {
	Port           string
	DataDir        string
	IconDir        string
	DBURL          string
	SQLitePath     string
	Auth0Domain    string
	Auth0Audience  string
	CookieDomain   string
	CookieSecure   bool
	IsDevelopment  bool
	AllowedOrigins []string
}

var Env Environment

// LoadEnvironment populates Env from the process environment. If no
// cookie domain is set, we're in development.
func LoadEnvironment() {
	domain := os.Getenv("COOKIE_DOMAIN")
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	Env = Environment{
		Port:           getenv("PORT", "8080"),
		DataDir:        getenv("DATA_DIR", "data"),
		IconDir:        getenv("ICON_DIR", filepath.Join("public", "plan-icons")),
		DBURL:          os.Getenv("DB_URL"),
		SQLitePath:     getenv("SQLITE_PATH", "estudaplan.db"),
		Auth0Domain:    os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience:  os.Getenv("AUTH0_AUDIENCE"),
		CookieDomain:   domain,
		CookieSecure:   !isDev,
		IsDevelopment:  isDev,
		AllowedOrigins: origins,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
