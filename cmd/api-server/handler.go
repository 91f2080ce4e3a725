package main

import "net/http"

func (app *App) initHandlers() {
	app.R.Get("/ws", app.handleWebSocket)

	app.R.Post("/auth/login", app.Authenticate)
	app.R.Post("/auth/logout", app.Middleware(http.HandlerFunc(app.Logout)))

	app.R.Get("/team", app.Middleware(http.HandlerFunc(app.GetTeam)))
	app.R.Get("/team/players", app.Middleware(http.HandlerFunc(app.GetTeamPlayers)))

	app.R.Get("/transfer", app.Middleware(http.HandlerFunc(app.GetTransferMarket)))
	app.R.Post("/transfer/{player_id}/list", app.Middleware(http.HandlerFunc(app.ListPlayer)))
	app.R.Post("/transfer/{player_id}/unlist", app.Middleware(http.HandlerFunc(app.UnlistPlayer)))
	app.R.Post("/transfer/{player_id}/buy", app.Middleware(http.HandlerFunc(app.BuyPlayer)))

	app.R.Get("/notifications", app.Middleware(http.HandlerFunc(app.GetNotifications)))
	app.R.Post("/notifications/seen", app.Middleware(http.HandlerFunc(app.MarkNotificationsSeen)))

	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})

}
