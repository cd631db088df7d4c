package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/sessions"

	"studycoach/internal/entity"
	"studycoach/internal/repository"
)

type StudySessionHandler struct {
	sessionRepo *repository.StudySessionRepository
	store       sessions.Store
	now         func() time.Time
}

func NewStudySessionHandler(sessionRepo *repository.StudySessionRepository, store sessions.Store) *StudySessionHandler {
	return &StudySessionHandler{
		sessionRepo: sessionRepo,
		store:       store,
		now:         time.Now,
	}
}

// Create logs a new study session from the dashboard form. Any outcome
// redirects back to the dashboard, failures leave a notice.
func (h *StudySessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(h.store, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	subject := strings.TrimSpace(r.FormValue("subject"))
	durationRaw := r.FormValue("duration_minutes")
	focusRaw := r.FormValue("focus_rating")

	duration, focus, notice := parseSessionInput(subject, durationRaw, focusRaw)
	if notice != "" {
		addNotice(h.store, w, r, notice)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	_, err := h.sessionRepo.Create(entity.NewStudySession(userID, subject, duration, focus, h.now()))
	if err != nil {
		log.Printf("creating study session for user %d: %v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	addNotice(h.store, w, r, "Study session logged.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// parseSessionInput validates the form fields and returns the parsed
// numbers. A non-empty notice means the input was rejected.
func parseSessionInput(subject, durationRaw, focusRaw string) (duration, focus int, notice string) {
	if subject == "" {
		return 0, 0, "Subject is required."
	}

	duration, err := strconv.Atoi(durationRaw)
	if err != nil {
		return 0, 0, "Invalid input."
	}
	focus, err = strconv.Atoi(focusRaw)
	if err != nil {
		return 0, 0, "Invalid input."
	}

	if duration <= 0 {
		return 0, 0, "Duration must be a positive number of minutes."
	}
	if focus < 1 || focus > 5 {
		return 0, 0, "Focus rating must be between 1 and 5."
	}

	return duration, focus, ""
}
