package countdown

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/util"
	"github.com/visalkrishnan/shopify-product-countdown-timer/repository"
)

// ViewCounter records that a promotion was delivered to a visitor, never blocks
type ViewCounter interface {
	Enqueue(shop string, promotionID string)
}

type viewKey struct {
	shop string
	id   string
}

// ViewCountWorkers batches view count increments per promotion. An increment goes to the worker
// chosen by hashing shop and id, so all increments of one promotion are summed in one place
// and written with a single update per flush.
type ViewCountWorkers struct {
	provider repository.Provider
	repo     repository.Promotion
	logger   *zap.Logger

	flushInterval time.Duration
	queues        []chan viewKey

	wg        sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once
}

var _ ViewCounter = &ViewCountWorkers{}

// ViewCountOptions ...
type ViewCountOptions struct {
	QueueSize     int
	NumWorkers    int
	FlushInterval time.Duration
}

// NewViewCountWorkers creates and starts the workers
func NewViewCountWorkers(
	provider repository.Provider, repo repository.Promotion, logger *zap.Logger, options ViewCountOptions,
) *ViewCountWorkers {
	w := newViewCountWorkers(provider, repo, logger, options)
	w.start()
	return w
}

func newViewCountWorkers(
	provider repository.Provider, repo repository.Promotion, logger *zap.Logger, options ViewCountOptions,
) *ViewCountWorkers {
	numWorkers := options.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	queueSize := options.QueueSize / numWorkers
	if queueSize < 1 {
		queueSize = 1
	}
	flushInterval := options.FlushInterval
	if flushInterval <= 0 {
		flushInterval = time.Second
	}

	queues := make([]chan viewKey, 0, numWorkers)
	for i := 0; i < numWorkers; i++ {
		queues = append(queues, make(chan viewKey, queueSize))
	}

	return &ViewCountWorkers{
		provider: provider,
		repo:     repo,
		logger:   logger,

		flushInterval: flushInterval,
		queues:        queues,

		done: make(chan struct{}),
	}
}

func (w *ViewCountWorkers) start() {
	w.wg.Add(len(w.queues))
	for _, queue := range w.queues {
		go func(queue chan viewKey) {
			defer w.wg.Done()
			w.run(queue)
		}(queue)
	}
}

// Enqueue drops the increment when the worker queue is full
func (w *ViewCountWorkers) Enqueue(shop string, promotionID string) {
	index := util.Shard(shop+"/"+promotionID, len(w.queues))

	select {
	case w.queues[index] <- viewKey{shop: shop, id: promotionID}:
	default:
		viewCountDropped.Inc()
	}
}

func (w *ViewCountWorkers) run(queue chan viewKey) {
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	pending := map[viewKey]int64{}

	for {
		select {
		case key := <-queue:
			pending[key]++

		case <-ticker.C:
			w.flush(pending)
			pending = map[viewKey]int64{}

		case <-w.done:
			for {
				select {
				case key := <-queue:
					pending[key]++
				default:
					w.flush(pending)
					return
				}
			}
		}
	}
}

func (w *ViewCountWorkers) flush(pending map[viewKey]int64) {
	if len(pending) == 0 {
		return
	}

	ctx := w.provider.Autocommit(context.Background())
	for key, delta := range pending {
		err := w.repo.IncrementViewCount(ctx, key.shop, key.id, delta)
		if err != nil {
			viewCountFlushErrors.Inc()
			w.logger.Warn("Increment view count failed",
				zap.String("shop", key.shop),
				zap.String("promotion_id", key.id),
				zap.Int64("delta", delta),
				zap.Error(err),
			)
		}
	}
}

// Close stops the workers after flushing what is still queued
func (w *ViewCountWorkers) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	w.wg.Wait()
}
