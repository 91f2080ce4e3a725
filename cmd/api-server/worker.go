package main

import (
	"encoding/json"
	"log"

	"github.com/RutikKulkarni/Football-Manager/internals/team"
)

// consumeTeamCreation builds teams for freshly registered users. The job is
// idempotent, so redelivery after a crash is harmless.
func (app *App) consumeTeamCreation() {
	msgs, err := app.Ch.Consume(
		"team_creation", // queue
		"",              // consumer
		true,            // auto-ack
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	failOnError(err, "Failed to register team_creation consumer")

	for d := range msgs {
		var job team.CreationJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			log.Printf("Invalid team creation job: %v", err)
			continue
		}

		if err := team.New(app.DB).CreateTeamForUser(job.UserID); err != nil {
			log.Printf("Failed to create team for user %d: %v", job.UserID, err)
			continue
		}
		log.Printf("Team ready for user %d", job.UserID)
	}
}

// consumeTransferEvents relays market events from the transfers exchange to
// this instance's websocket clients.
func (app *App) consumeTransferEvents() {
	q, err := app.Ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	failOnError(err, "Failed to declare a queue")

	err = app.Ch.QueueBind(
		q.Name,      // queue name
		"",          // routing key
		"transfers", // exchange
		false,
		nil,
	)
	failOnError(err, "Failed to bind a queue")

	msgs, err := app.Ch.Consume(
		q.Name, // queue
		"",     // consumer
		true,   // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	failOnError(err, "Failed to register a consumer")

	for d := range msgs {
		app.broadcast(d.Body)
	}
}
