package main

import (
	"encoding/json"
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gorilla/websocket"
)

// MarketEvent is broadcast to websocket clients whenever the transfer market
// changes.
type MarketEvent struct {
	Kind       string `json:"kind"` // listed | unlisted | sold
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name,omitempty"`
	TeamID     string `json:"team_id"`
	Price      int64  `json:"price,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (app *App) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not open websocket connection", http.StatusBadRequest)
		return
	}

	defer func() {
		conn.Close()
		app.ClientsM.Lock()
		delete(app.WS, conn)
		app.ClientsM.Unlock()
	}()

	app.ClientsM.Lock()
	app.WS[conn] = true
	app.ClientsM.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// publishMarketEvent fans the event out through the transfers exchange so
// every api-server instance can broadcast it to its own clients. Event
// delivery is best effort; the transfer itself is already committed.
func (app *App) publishMarketEvent(ev MarketEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to marshal market event: %v", err)
		return
	}

	err = app.Ch.Publish(
		"transfers", // exchange
		"",          // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("Failed to publish market event: %v", err)
	}
}

// broadcast writes the payload to every connected websocket client, dropping
// the ones that went away.
func (app *App) broadcast(data []byte) {
	app.ClientsM.Lock()
	defer app.ClientsM.Unlock()

	for conn := range app.WS {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(app.WS, conn)
		}
	}
}
