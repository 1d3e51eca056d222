package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fareschokri/pagerank/pkg/utils"
)

// Client publishes jobs on the work queue and matches results coming back
// on the result queue by job id.
type Client struct {
	queue   *Queue
	pending *utils.SafeMap[string, chan Result]
}

// NewClient starts a goroutine consuming the result queue and dispatching
// results to their waiting submitters.
func NewClient(q *Queue) (*Client, error) {
	c := &Client{
		queue:   q,
		pending: utils.NewSafeMap[string, chan Result](),
	}
	msgs, err := q.Channel.Consume(
		q.Result.Name, // queue
		"",            // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return nil, err
	}
	go func() {
		for d := range msgs {
			var result Result
			if err := json.Unmarshal(d.Body, &result); err != nil {
				utils.FailOnNack(d, err)
				continue
			}
			if err := d.Ack(false); err != nil {
				utils.WarnLog("client", "Failed to acknowledge result %s: %v", result.Id, err)
			}
			if ch, ok := c.pending.Get(result.Id); ok {
				ch <- result
			}
		}
	}()
	return c, nil
}

// Submit assigns the job an id, publishes it and returns the id to await on.
func (c *Client) Submit(job Job) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	job.Id = id
	data, err := json.Marshal(&job)
	if err != nil {
		return "", err
	}
	c.pending.Put(id, make(chan Result, 1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = c.queue.Channel.PublishWithContext(ctx,
		"",
		c.queue.Work.Name, // routing key
		false,             // mandatory
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         data,
		})
	if err != nil {
		c.pending.Delete(id)
		return "", err
	}
	return id, nil
}

// Await blocks until the result for id arrives or the context expires.
func (c *Client) Await(ctx context.Context, id string) (Result, error) {
	ch, ok := c.pending.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("no pending job with id %s", id)
	}
	defer c.pending.Delete(id)
	select {
	case result := <-ch:
		return result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
