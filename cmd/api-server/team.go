package main

import (
	"errors"
	"net/http"

	"github.com/RutikKulkarni/Football-Manager/internals/team"
)

func (app *App) GetTeam(w http.ResponseWriter, r *http.Request) {

	userID := r.Context().Value("user_id").(int)

	details, err := team.New(app.DB).GetTeamByUser(userID)
	if errors.Is(err, team.ErrTeamNotReady) {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: err.Error()})
		return
	}
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: details})
}

func (app *App) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {

	userID := r.Context().Value("user_id").(int)

	players, err := team.New(app.DB).GetPlayers(userID)
	if errors.Is(err, team.ErrTeamNotReady) {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: err.Error()})
		return
	}
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: players})
}
