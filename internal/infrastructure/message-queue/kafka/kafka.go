package kafka

import (
	"context"

	"github.com/ferremax/inventory-service/config"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return conn, nil
}
