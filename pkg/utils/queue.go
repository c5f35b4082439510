package utils

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Queue struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Work    amqp.Queue
	Result  amqp.Queue
}

// Connect to RabbitMQ and declare the work and result queues
// User has to `defer q.Close()`
func DialQueue(url, work, result string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	q := &Queue{Conn: conn, Channel: ch}
	if q.Work, err = DeclareQueue(work, ch); err != nil {
		q.Close()
		return nil, err
	}
	if q.Result, err = DeclareQueue(result, ch); err != nil {
		q.Close()
		return nil, err
	}
	return q, nil
}

func (q *Queue) Close() {
	if q.Channel != nil {
		q.Channel.Close()
	}
	if q.Conn != nil {
		q.Conn.Close()
	}
}

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
	// One unacknowledged delivery per consumer
	if err = ch.Qos(1, 0, false); err != nil {
		return
	}
	return
}

// Reject a message that can never be processed (it is not re-added to the queue)
func FailOnNack(d amqp.Delivery, err error) {
	WarnLog("queue", "Could not process message %s: %v", d.MessageId, err)
	if err = d.Nack(false, false); err != nil {
		log.Fatalf("Could not NACK to message queue: %v", err)
	}
}
