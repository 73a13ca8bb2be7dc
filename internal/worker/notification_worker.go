package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/youthbridge/portal-service/internal/service"
)

// NotificationWorker drains queued notifications on background goroutines.
// Delivery is a structured log line today; a real mail or webhook sender
// can slot in behind the same queue.
type NotificationWorker struct {
	queue   chan service.Notification
	logger  *zap.Logger
	workers int
	wg      sync.WaitGroup
	once    sync.Once
}

// NewNotificationWorker builds a worker with the given concurrency and
// queue capacity.
func NewNotificationWorker(logger *zap.Logger, workers, buffer int) *NotificationWorker {
	if workers <= 0 {
		workers = 2
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationWorker{
		queue:   make(chan service.Notification, buffer),
		logger:  logger,
		workers: workers,
	}
}

// Enqueue queues a notification; when the buffer is full the notification
// is dropped rather than blocking the request path.
func (w *NotificationWorker) Enqueue(n service.Notification) {
	select {
	case w.queue <- n:
	default:
		w.logger.Warn("notification queue full, dropping",
			zap.String("subject", n.Subject),
			zap.String("event_type", string(n.Event.Type)))
	}
}

// Start launches the worker goroutines. They run until the context ends.
func (w *NotificationWorker) Start(ctx context.Context) {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case n, ok := <-w.queue:
					if !ok {
						return
					}
					w.deliver(n)
				}
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight deliveries.
func (w *NotificationWorker) Stop() {
	w.once.Do(func() { close(w.queue) })
	w.wg.Wait()
}

func (w *NotificationWorker) deliver(n service.Notification) {
	w.logger.Info("notification delivered",
		zap.String("subject", n.Subject),
		zap.String("body", n.Body),
		zap.String("event_type", string(n.Event.Type)),
		zap.String("subject_id", n.Event.SubjectID))
}
