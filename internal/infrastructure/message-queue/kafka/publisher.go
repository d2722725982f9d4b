package kafka

import "github.com/segmentio/kafka-go"

// Publisher adapts a leader connection to the service layer's EventPublisher.
type Publisher struct {
	conn *kafka.Conn
}

func CreatePublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(msg []byte) error {
	_, err := p.conn.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}
