package jobs

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fareschokri/pagerank/pkg/graph"
	"github.com/fareschokri/pagerank/pkg/rank"
)

// Job is a whole-graph rank request published on the work queue.
type Job struct {
	Id            string      `json:"id"`
	Graph         graph.Graph `json:"graph"`
	DampingFactor float64     `json:"damping_factor,omitempty"`
	SampleCount   int         `json:"sample_count,omitempty"`
	Epsilon       float64     `json:"epsilon,omitempty"`
}

// Result carries both estimates back on the result queue.
// Error is set instead when the job could not be processed.
type Result struct {
	Id       string            `json:"id"`
	Sampled  rank.Distribution `json:"sampled,omitempty"`
	Iterated rank.Distribution `json:"iterated,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type Queue struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Work    *amqp.Queue
	Result  *amqp.Queue
}
