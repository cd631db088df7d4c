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

type RegistrationHandler struct {
	userRepo *repository.UserRepository
	store    sessions.Store
	tmpl     *template.Template
}

func NewRegistrationHandler(userRepo *repository.UserRepository, store sessions.Store) *RegistrationHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "register.html"))

	return &RegistrationHandler{
		userRepo: userRepo,
		store:    store,
		tmpl:     tmpl,
	}
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "", map[string]string{})
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	_, err := h.userRepo.Register(username, password)
	if err != nil {
		var verr *repository.ValidationError
		if errors.As(err, &verr) {
			h.render(w, verr.Message, map[string]string{"username": username})
			return
		}

		log.Printf("register failed for %q: %v", username, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	addNotice(h.store, w, r, "Account created. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *RegistrationHandler) render(w http.ResponseWriter, errMsg string, form map[string]string) {
	data := map[string]interface{}{
		"Title": "Register",
		"Error": errMsg,
		"Form":  form,
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("rendering register page: %v", err)
	}
}
