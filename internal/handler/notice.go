package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "app-session"

// currentUserID reads the logged-in user's id from the cookie session.
func currentUserID(store sessions.Store, r *http.Request) (int, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return 0, false
	}

	return userID, true
}

// addNotice queues a one-time message shown on the next page render.
func addNotice(store sessions.Store, w http.ResponseWriter, r *http.Request, message string) {
	session, _ := store.Get(r, sessionName)
	session.AddFlash(message)
	session.Save(r, w)
}

// popNotices drains the queued messages. Reading flashes mutates the
// session, so it has to be saved before the page is written.
func popNotices(store sessions.Store, w http.ResponseWriter, r *http.Request) []string {
	session, _ := store.Get(r, sessionName)

	flashes := session.Flashes()
	if len(flashes) > 0 {
		session.Save(r, w)
	}

	notices := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			notices = append(notices, s)
		}
	}

	return notices
}
