package jobs

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fareschokri/pagerank/pkg/utils"
)

// Connect dials the broker and declares the work and result queues.
func Connect(url, workName, resultName string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	work, err := utils.DeclareQueue(workName, ch)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	result, err := utils.DeclareQueue(resultName, ch)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Queue{
		Conn:    conn,
		Channel: ch,
		Work:    &work,
		Result:  &result,
	}, nil
}

// Drain empties the work and result queues, discarding messages left over
// from a previous run.
func (q *Queue) Drain() error {
	stale, err := utils.EmptyQueue(q.Channel, q.Work.Name)
	if err != nil {
		return err
	}
	results, err := utils.EmptyQueue(q.Channel, q.Result.Name)
	if err != nil {
		return err
	}
	if stale+results > 0 {
		utils.WorkerLog("Discarded %d stale messages", stale+results)
	}
	return nil
}

func (q *Queue) Close() {
	q.Channel.Close()
	q.Conn.Close()
}
