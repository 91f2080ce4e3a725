package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/RutikKulkarni/Football-Manager/internals/auth"
	"github.com/RutikKulkarni/Football-Manager/internals/team"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Authenticate logs a user in, registering them first if the email is new.
// A new user's team is built asynchronously by the team-creation consumer.
func (app *App) Authenticate(w http.ResponseWriter, r *http.Request) {

	var body auth.AuthRequestBody
	err := getBody(r, &body)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if body.Email == "" || body.Password == "" {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "email and password are required"})
		return
	}

	result, err := auth.New(app.KVStore, app.DB, app.Conf.GetString("jwt.secret")).Authenticate(body)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}

	if result.IsNewUser {
		if err := app.enqueueTeamCreation(result.UserID); err != nil {
			// Registration still succeeded; the user can retry by logging in
			// again once the queue is back.
			log.Printf("Failed to enqueue team creation for user %d: %v", result.UserID, err)
		}
	}

	status := http.StatusOK
	if result.IsNewUser {
		status = http.StatusCreated
	}
	sendResponse(w, httpResp{Status: status, Data: result})
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {

	userID := r.Context().Value("user_id").(int)
	token := r.Context().Value("token").(string)

	err := auth.New(app.KVStore, app.DB, app.Conf.GetString("jwt.secret")).RevokeToken(userID, token)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Logged out successfully"}})
}

func (app *App) enqueueTeamCreation(userID int) error {
	body, err := json.Marshal(team.CreationJob{UserID: userID})
	if err != nil {
		return err
	}

	return app.Ch.Publish(
		"",              // exchange
		"team_creation", // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
