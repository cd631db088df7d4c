package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"

	"studycoach/internal/repository"
)

type TaskHandler struct {
	taskRepo *repository.TaskRepository
	store    sessions.Store
}

func NewTaskHandler(taskRepo *repository.TaskRepository, store sessions.Store) *TaskHandler {
	return &TaskHandler{
		taskRepo: taskRepo,
		store:    store,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(h.store, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		addNotice(h.store, w, r, "Task title required.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if _, err := h.taskRepo.Create(userID, title); err != nil {
		log.Printf("creating task for user %d: %v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	addNotice(h.store, w, r, "Task added.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "toggling", "", h.taskRepo.Toggle)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "deleting", "Task deleted.", h.taskRepo.Delete)
}

// mutate runs an ownership-filtered task operation. A task that does not
// exist or belongs to someone else leaves a not-found notice and changes
// nothing.
func (h *TaskHandler) mutate(w http.ResponseWriter, r *http.Request, verb, successNotice string, op func(taskID, userID int) error) {
	userID, ok := currentUserID(h.store, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	taskID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		addNotice(h.store, w, r, "Task not found.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := op(taskID, userID); err != nil {
		var nf *repository.NotFoundError
		if errors.As(err, &nf) {
			addNotice(h.store, w, r, "Task not found.")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		log.Printf("%s task %d for user %d: %v", verb, taskID, userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	if successNotice != "" {
		addNotice(h.store, w, r, successNotice)
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
