package main

import (
	"context"

	"github.com/ferremax/inventory-service/config"
	"github.com/ferremax/inventory-service/internal/app"
	"github.com/ferremax/inventory-service/internal/infrastructure/database/mongodb"
	kafkainfra "github.com/ferremax/inventory-service/internal/infrastructure/message-queue/kafka"
	"github.com/ferremax/inventory-service/internal/service"
	"github.com/rs/zerolog/log"
)

// @title Inventory Service API
// @version 1.0
// @description CRUD API over the product catalog and users, with stock adjustment.
// @BasePath /api
func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	var publisher service.EventPublisher
	if config.KafkaConfig.BrokerAddress != "" {
		conn, err := kafkainfra.CreateKafkaProducer(config)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer conn.Close()
		publisher = kafkainfra.CreatePublisher(conn)
	}

	server := app.App{
		DB:        db,
		Config:    config,
		Publisher: publisher,
	}

	server.Start()
}
