package main

import (
	"net/http"

	"github.com/RutikKulkarni/Football-Manager/internals/notification"
)

func (app *App) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int)

	notifications, err := notification.New(app.DB).GetNotifications(userID)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: notifications})
}

func (app *App) MarkNotificationsSeen(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int)

	err := notification.New(app.DB).MarkSeen(userID)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Notifications marked as seen"}})
}
