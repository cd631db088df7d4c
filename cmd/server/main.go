package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"studycoach/internal/database"
	"studycoach/internal/handler"
	"studycoach/internal/middleware"
	"studycoach/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	config := database.LoadConfig()

	db, err := database.Connect(config)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	store := newSessionStore(config.SessionSecret)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewStudySessionRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	registrationHandler := handler.NewRegistrationHandler(userRepo, store)
	loginHandler := handler.NewLoginHandler(userRepo, store)
	dashboardHandler := handler.NewDashboardHandler(sessionRepo, taskRepo, store)
	studySessionHandler := handler.NewStudySessionHandler(sessionRepo, store)
	taskHandler := handler.NewTaskHandler(taskRepo, store)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", dashboardHandler.Home)
	mux.HandleFunc("GET /register", registrationHandler.RegisterPage)
	mux.HandleFunc("POST /register", registrationHandler.Register)
	mux.HandleFunc("GET /login", loginHandler.LoginPage)
	mux.HandleFunc("POST /login", loginHandler.Login)
	mux.HandleFunc("GET /logout", loginHandler.Logout)
	mux.HandleFunc("GET /dashboard", dashboardHandler.DashboardPage)
	mux.HandleFunc("POST /sessions/new", studySessionHandler.Create)
	mux.HandleFunc("POST /tasks/new", taskHandler.Create)
	mux.HandleFunc("POST /tasks/{id}/toggle", taskHandler.Toggle)
	mux.HandleFunc("POST /tasks/{id}/delete", taskHandler.Delete)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("StudyCoach listening on :%s", port)
	if err := http.ListenAndServe(":"+port, middleware.RequireAuth(store)(mux)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newSessionStore(secret string) sessions.Store {
	key := []byte(secret)
	if len(key) == 0 {
		log.Println("SESSION_SECRET not set, generating a random key (sessions reset on restart)")
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
