package jobs

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fareschokri/pagerank/pkg/rank"
	"github.com/fareschokri/pagerank/pkg/utils"
)

// Consume reads jobs from the work queue until the channel closes. Every
// job runs both estimators on the full graph and publishes a Result to the
// result queue.
func (q *Queue) Consume() error {
	msgs, err := q.Channel.Consume(
		q.Work.Name, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return err
	}
	utils.WorkerLog("Registered consumer on %s", q.Work.Name)
	for d := range msgs {
		// Get job from bytes
		var job Job
		if err := json.Unmarshal(d.Body, &job); err != nil {
			utils.FailOnNack(d, err)
			continue
		}
		utils.WorkerLog("Computing job %s (%d pages)", job.Id, len(job.Graph))
		result := process(job)
		data, err := json.Marshal(&result)
		if err != nil {
			utils.FailOnNack(d, err)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = q.Channel.PublishWithContext(ctx,
			"",
			q.Result.Name, // routing key
			false,         // mandatory
			false,
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				Body:         data,
			})
		cancel()
		if err != nil {
			utils.FailOnNack(d, err)
			continue
		}
		utils.WorkerLog("Completed job %s", job.Id)

		// Ack
		if err := d.Ack(false); err != nil {
			utils.FailOnNack(d, err)
			continue
		}
	}
	return nil
}

func process(job Job) Result {
	result := Result{Id: job.Id}
	job.Graph.Normalize()
	if err := job.Graph.Validate(); err != nil {
		result.Error = err.Error()
		return result
	}
	cfg := rank.Config{
		DampingFactor: job.DampingFactor,
		SampleCount:   job.SampleCount,
		Epsilon:       job.Epsilon,
	}
	if err := cfg.Validate(); err != nil {
		result.Error = err.Error()
		return result
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled, err := rank.SampleRank(job.Graph, cfg.DampingFactor, cfg.SampleCount, rng)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	iterated, err := rank.IterateRank(job.Graph, cfg.DampingFactor, cfg.Epsilon)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Sampled = sampled
	result.Iterated = iterated
	return result
}
