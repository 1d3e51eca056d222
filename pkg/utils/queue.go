package utils

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func DeclareQueue(name string, ch *amqp.Channel) (queue amqp.Queue, err error) {
	queue, err = ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return
	}
	if err = ch.Qos(1, 0, false); err != nil {
		return
	}
	return
}

func FailOnNack(d amqp.Delivery, err error) {
	WarnLog("queue", "Could not handle delivery: %v", err)
	// Message will be re-added to the queue
	if err = d.Nack(false, true); err != nil {
		log.Fatalf("Could not NACK to message queue: %v", err)
	}
}

// EmptyQueue discards every message currently sitting in the queue and
// returns how many were dropped. Used to clear stale messages left over
// from a previous run.
func EmptyQueue(ch *amqp.Channel, name string) (int, error) {
	count := 0
	for {
		msg, ok, err := ch.Get(name, false)
		if err != nil {
			return count, err
		}
		// Queue is empty
		if !ok {
			return count, nil
		}
		// Acknowledge the message to remove it from the queue
		if err := msg.Ack(false); err != nil {
			return count, err
		}
		count++
	}
}
