package app

import "net/http"

const SessionKeyUserId = "userId"

func (app *application) sessionUserId(r *http.Request) int {
	return app.sessionManager.GetInt(r.Context(), SessionKeyUserId)
}
