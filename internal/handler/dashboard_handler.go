package handler

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"studycoach/internal/entity"
	"studycoach/internal/insight"
	"studycoach/internal/repository"
	"studycoach/internal/templates"
)

const recentLimit = 10

type DashboardHandler struct {
	sessionRepo *repository.StudySessionRepository
	taskRepo    *repository.TaskRepository
	store       sessions.Store
	tmpl        *template.Template
	now         func() time.Time
}

// DashboardData is the read-only view model for the dashboard page.
type DashboardData struct {
	Username      string
	Notices       []string
	Sessions      []entity.StudySession
	Tasks         []entity.Task
	SessionsCount int
	TasksCount    int
	Week          insight.WeeklyReport
}

func NewDashboardHandler(sessionRepo *repository.StudySessionRepository, taskRepo *repository.TaskRepository, store sessions.Store) *DashboardHandler {
	funcMap := template.FuncMap{
		"fmtFocus": func(f *float64) string {
			if f == nil {
				return "—"
			}
			return fmt.Sprintf("%.2f", *f)
		},
	}
	tmpl := template.Must(template.New("dashboard.html").
		Funcs(funcMap).
		ParseFS(templates.FS, "dashboard.html"))

	return &DashboardHandler{
		sessionRepo: sessionRepo,
		taskRepo:    taskRepo,
		store:       store,
		tmpl:        tmpl,
		now:         time.Now,
	}
}

// Home redirects the root path to the dashboard.
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(h.store, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, _ := h.store.Get(r, sessionName)
	username, _ := session.Values["username"].(string)

	recentSessions, err := h.sessionRepo.RecentByUser(userID, recentLimit)
	if err != nil {
		h.fail(w, "loading sessions", err)
		return
	}

	recentTasks, err := h.taskRepo.RecentByUser(userID, recentLimit)
	if err != nil {
		h.fail(w, "loading tasks", err)
		return
	}

	sessionsCount, err := h.sessionRepo.CountByUser(userID)
	if err != nil {
		h.fail(w, "counting sessions", err)
		return
	}

	tasksCount, err := h.taskRepo.CountByUser(userID)
	if err != nil {
		h.fail(w, "counting tasks", err)
		return
	}

	now := h.now()
	weekSessions, err := h.sessionRepo.ByUserSince(userID, now.Add(-insight.Window))
	if err != nil {
		h.fail(w, "loading weekly sessions", err)
		return
	}

	data := DashboardData{
		Username:      username,
		Notices:       popNotices(h.store, w, r),
		Sessions:      recentSessions,
		Tasks:         recentTasks,
		SessionsCount: sessionsCount,
		TasksCount:    tasksCount,
		Week:          insight.Analyze(weekSessions, now),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("rendering dashboard: %v", err)
	}
}

func (h *DashboardHandler) fail(w http.ResponseWriter, what string, err error) {
	log.Printf("dashboard: %s: %v", what, err)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}
