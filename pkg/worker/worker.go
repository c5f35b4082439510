package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lioia/pagerank/pkg/api"
	"github.com/lioia/pagerank/pkg/utils"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp.Channel used to send results
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Worker struct {
	Ranker    *api.Ranker
	Publisher Publisher
	Result    string // Result queue used when a job has no reply queue
}

// Run consumes the work queue until ctx is done or the channel is closed
func (w *Worker) Run(ctx context.Context, ch *amqp.Channel, work string) error {
	msgs, err := ch.Consume(
		work,  // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("could not register a consumer for %s: %w", work, err)
	}
	log.Printf(" [*] Waiting for jobs on %s", work)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.Process(ctx, d)
		}
	}
}

// Process ranks the job in d and publishes its result. A message that is not
// a job is rejected; a job that cannot be ranked gets an error result.
func (w *Worker) Process(ctx context.Context, d amqp.Delivery) {
	body, err := w.Handle(ctx, d.Body)
	if err != nil {
		utils.FailOnNack(d, err)
		return
	}
	key := w.Result
	if d.ReplyTo != "" {
		key = d.ReplyTo
	}
	err = w.Publisher.PublishWithContext(ctx,
		"",
		key,   // routing key
		false, // mandatory
		false,
		amqp.Publishing{
			ContentType:   ContentType,
			CorrelationId: d.CorrelationId,
			Body:          body,
		})
	if err != nil {
		// Message will be re-added to the queue
		utils.WarnLog("worker", "Could not publish result: %v", err)
		if err := d.Nack(false, true); err != nil {
			log.Fatalf("Could not NACK to message queue: %v", err)
		}
		return
	}
	if err := d.Ack(false); err != nil {
		utils.WarnLog("worker", "Could not ACK message: %v", err)
	}
}

// Handle decodes a job, ranks it and returns the encoded result.
// The error is only set when body is not a job.
func (w *Worker) Handle(ctx context.Context, body []byte) ([]byte, error) {
	var job Job
	if err := Decode(body, &job); err != nil {
		return nil, fmt.Errorf("could not decode job: %w", err)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	utils.ComputeLog("worker", "Computing job %s (%d pages)", job.ID, len(job.Corpus))
	result := JobResult{ID: job.ID}
	res, err := w.Ranker.Rank(ctx, "queue", job.RankRequest)
	if err != nil {
		utils.WarnLog("worker", "Job %s failed: %v", job.ID, err)
		result.Error = err.Error()
	} else {
		result.RankResponse = &res
	}
	utils.ComputeLog("worker", "Completed job %s", job.ID)
	return Encode(result)
}

// Submit publishes a job and waits for its result on an exclusive reply queue
func Submit(ctx context.Context, ch *amqp.Channel, work string, req api.RankRequest) (JobResult, error) {
	reply, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return JobResult{}, err
	}
	msgs, err := ch.Consume(reply.Name, "", true, true, false, false, nil)
	if err != nil {
		return JobResult{}, err
	}
	job := Job{ID: uuid.NewString(), RankRequest: req}
	body, err := Encode(job)
	if err != nil {
		return JobResult{}, err
	}
	err = ch.PublishWithContext(ctx,
		"",
		work,  // routing key
		false, // mandatory
		false,
		amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   ContentType,
			CorrelationId: job.ID,
			ReplyTo:       reply.Name,
			MessageId:     job.ID,
			Body:          body,
		})
	if err != nil {
		return JobResult{}, err
	}
	for {
		select {
		case <-ctx.Done():
			return JobResult{}, ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return JobResult{}, fmt.Errorf("reply queue %s closed", reply.Name)
			}
			if d.CorrelationId != job.ID {
				continue
			}
			var result JobResult
			err := Decode(d.Body, &result)
			return result, err
		}
	}
}
