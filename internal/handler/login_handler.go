package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"studycoach/internal/repository"
	"studycoach/internal/templates"
)

type LoginHandler struct {
	userRepo *repository.UserRepository
	store    sessions.Store
	tmpl     *template.Template
}

func NewLoginHandler(userRepo *repository.UserRepository, store sessions.Store) *LoginHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "login.html"))

	return &LoginHandler{
		userRepo: userRepo,
		store:    store,
		tmpl:     tmpl,
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUserID(h.store, r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":   "Log in",
		"Notices": popNotices(h.store, w, r),
		"Form":    map[string]string{},
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("rendering login page: %v", err)
	}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.userRepo.Login(username, password)
	if err != nil {
		var aerr *repository.AuthError
		if errors.As(err, &aerr) {
			addNotice(h.store, w, r, aerr.Error())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		log.Printf("login failed for %q: %v", username, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	session, _ := h.store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	if err := session.Save(r, w); err != nil {
		log.Printf("saving session for user %d: %v", user.ID, err)
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout drops the session. Safe to call without one, the result is the same.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
