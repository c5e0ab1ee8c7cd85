package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/estudaplan/estudaplan-api/config"
	"github.com/estudaplan/estudaplan-api/handlers"
	"github.com/estudaplan/estudaplan-api/middleware"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	config.LoadEnvironment()
	if err := config.Connect(); err != nil {
		log.Fatalf("failed to connect the user registry database: %v", err)
	}
	authMiddleware := middleware.EnsureValidToken()

	dataHandler := &handlers.DataHandler{
		DataDir: config.Env.DataDir,
		IconDir: config.Env.IconDir,
	}
	api := http.NewServeMux()
	dataHandler.Register(api)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", handlers.Login)
	mux.Handle("/plan-icons/", http.StripPrefix("/plan-icons/",
		http.FileServer(http.Dir(config.Env.IconDir))))
	mux.Handle("/api/", authMiddleware(middleware.SyncUser(api)))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("listening on %s", serverAddr)
	log.Fatal(http.ListenAndServe(serverAddr, corsHandler))
}
