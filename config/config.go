package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("DB_NAME"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "3000"
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "inventory"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}
