package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/RutikKulkarni/Football-Manager/pkg/conf"
	"github.com/RutikKulkarni/Football-Manager/pkg/kvstore"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type App struct {
	DB       *gorm.DB
	R        *chi.Mux
	WS       map[*websocket.Conn]bool
	ClientsM sync.Mutex
	KVStore  kvstore.KVStore
	Ch       *amqp.Channel
	Conf     *viper.Viper
}

func main() {

	cfg := conf.Config(".")

	conn, err := amqp.Dial(cfg.GetString("rabbitmq.url"))
	failOnError(err, "Failed to connect to RabbitMQ")
	defer conn.Close()

	ch, err := conn.Channel()
	failOnError(err, "Failed to open a channel")
	defer ch.Close()

	app := &App{
		WS:   make(map[*websocket.Conn]bool),
		Ch:   ch,
		Conf: cfg,
	}

	gdb, err := app.initDB()
	failOnError(err, "Failed to set up postgres")
	app.DB = gdb

	r := chi.NewRouter()
	// CORS middleware configuration
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.GetString("server.cors_origin")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	app.R = r

	app.initKVStore()
	app.initQueues()
	app.initHandlers()

	// Team creation runs off a queue so registration never blocks on squad
	// generation; transfer events fan out to websocket clients.
	go app.consumeTeamCreation()
	go app.consumeTransferEvents()

	addr := cfg.GetString("server.addr")
	log.Printf("api-server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		panic(err)
	}

}
