package main

import (
	"log"

	"github.com/RutikKulkarni/Football-Manager/db"
	"github.com/RutikKulkarni/Football-Manager/pkg/kvstore"

	"gorm.io/gorm"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

func (app *App) initDB() (*gorm.DB, error) {
	gdb, err := db.Open(app.Conf.GetString("postgres.dsn"))
	if err != nil {
		return nil, err
	}

	if err := db.Setup(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

func (app *App) initKVStore() {
	app.KVStore = kvstore.NewRedis(
		app.Conf.GetString("redis.addr"),
		app.Conf.GetString("redis.password"),
		app.Conf.GetInt("redis.db"),
	)
}

func (app *App) initQueues() {
	_, err := app.Ch.QueueDeclare(
		"team_creation", // name
		false,           // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	failOnError(err, "Failed to declare team_creation queue")

	err = app.Ch.ExchangeDeclare(
		"transfers", // name
		"fanout",    // type
		true,        // durable
		false,       // auto-deleted
		false,       // internal
		false,       // no-wait
		nil,         // arguments
	)
	failOnError(err, "Failed to declare transfers exchange")
}
