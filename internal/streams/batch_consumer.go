package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/svcerrors"
	"tracking-pixel/internal/shared/ulid"
)

const (
	defaultBatchSize     = 100
	defaultFlushInterval = time.Second

	// maxDeliveryAttempts bounds in-process redelivery of a failed batch.
	maxDeliveryAttempts      = 3
	initialRedeliveryBackoff = 200 * time.Millisecond
	maxRedeliveryBackoff     = 2 * time.Second
)

type BatchConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type BatchConsumerOptions struct {
	BatchSize     int
	FlushInterval time.Duration
}

type batchConsumer struct {
	queue   *PartitionedQueue[Record]
	handler BatchHandler
	opts    BatchConsumerOptions

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

// NewBatchConsumer drains the in-process queue in batches of up to BatchSize records, flushing a
// partial batch after FlushInterval, and hands each batch to handler.
func NewBatchConsumer(queue *PartitionedQueue[Record], handler BatchHandler, opts BatchConsumerOptions, logger loggers.Logger) BatchConsumer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultFlushInterval
	}
	return &batchConsumer{
		queue:   queue,
		handler: handler,
		opts:    opts,
		stopCh:  make(chan struct{}),
		logger:  logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *batchConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop flushes pending batches and waits for workers to exit (best called during app shutdown).
func (consumer *batchConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *batchConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan Record) {
	logger := consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger()

	batch := make([]Record, 0, consumer.opts.BatchSize)
	ticker := time.NewTicker(consumer.opts.FlushInterval)
	defer ticker.Stop()

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		consumer.deliver(ctx, logger, batch)
		batch = make([]Record, 0, consumer.opts.BatchSize)
	}

	for {
		select {
		case <-ctx.Done():
			// The parent is gone; flush on a fresh context so buffered records are not lost.
			flush(context.WithoutCancel(ctx))
			return
		case <-consumer.stopCh:
			consumer.drain(ch, &batch)
			flush(ctx)
			return
		case record, ok := <-ch:
			if !ok {
				flush(ctx)
				return
			}
			batch = append(batch, record)
			if len(batch) >= consumer.opts.BatchSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// drain moves records already buffered in the partition into batch without blocking.
func (consumer *batchConsumer) drain(ch <-chan Record, batch *[]Record) {
	for {
		select {
		case record, ok := <-ch:
			if !ok {
				return
			}
			*batch = append(*batch, record)
		default:
			return
		}
	}
}

// deliver hands the batch to the handler, redelivering with backoff on failure.
func (consumer *batchConsumer) deliver(ctx context.Context, logger loggers.Logger, batch []Record) {
	ctx = logger.With().
		Str(loggers.FieldBatchID, ulid.NewULID()).
		Int(loggers.FieldBatchSize, len(batch)).
		Logger().WithContext(ctx)

	backoff := initialRedeliveryBackoff
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err := consumer.handleSafely(ctx, batch)
		metricBatchConsumedTotal.WithLabelValues(driverQueue, errorCodeLabel(err)).Inc()
		if err == nil {
			metricRecordConsumedTotal.WithLabelValues(driverQueue).Add(float64(len(batch)))
			return
		}

		loggers.Ctx(ctx).Error().Err(err).Msgf("batch delivery attempt %d/%d failed", attempt, maxDeliveryAttempts)
		if attempt == maxDeliveryAttempts {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
			backoff *= 2
			if backoff > maxRedeliveryBackoff {
				backoff = maxRedeliveryBackoff
			}
		}
	}
}

func (consumer *batchConsumer) handleSafely(ctx context.Context, batch []Record) (err error) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if e, ok := r.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			err = svcerrors.NewInternalErrorPanic(panicErr)
		}
	}()

	return consumer.handler.HandleBatch(ctx, batch)
}
