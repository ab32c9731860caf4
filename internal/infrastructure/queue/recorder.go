package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/api/metrics"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Recorder persists analytics events off the request path. Events are sharded
// to a fixed set of workers by client IP so one visitor's events keep their
// order. Enqueue never blocks: when a worker's buffer is full the event is
// dropped and counted.
type Recorder struct {
	workers []chan ports.RecordEventInput
	service ports.AnalyticsService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, service ports.AnalyticsService, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan ports.RecordEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan ports.RecordEventInput, channelBuffer)
	}
	return r
}

// Start launches the worker goroutines. Workers drain their buffers and stop
// once ctx is cancelled; Wait blocks until they have all returned.
func (r *Recorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		r.wg.Add(1)
		go r.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker started by Start has exited.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

// Enqueue hands the event to the worker owning its IP. It reports false when
// the event was dropped.
func (r *Recorder) Enqueue(in ports.RecordEventInput) bool {
	idx := r.shardIndex(in.Meta.IPAddress)
	select {
	case r.workers[idx] <- in:
		metrics.AnalyticsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(r.workers[idx])))
		return true
	default:
		metrics.AnalyticsEventsTotal.WithLabelValues(string(in.EventType), "dropped").Inc()
		r.log.Warn().
			Str("event_type", string(in.EventType)).
			Int("worker_id", idx).
			Msg("analytics queue full, event dropped")
		return false
	}
}

func (r *Recorder) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(r.workers)))
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan ports.RecordEventInput) {
	defer r.wg.Done()
	depth := metrics.AnalyticsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			r.drain(id, ch)
			return
		case in := <-ch:
			depth.Set(float64(len(ch)))
			r.record(context.Background(), id, in)
		}
	}
}

// drain writes whatever is still buffered after shutdown was requested.
func (r *Recorder) drain(id int, ch <-chan ports.RecordEventInput) {
	for {
		select {
		case in := <-ch:
			r.record(context.Background(), id, in)
		default:
			return
		}
	}
}

func (r *Recorder) record(ctx context.Context, id int, in ports.RecordEventInput) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	start := time.Now()
	err := r.service.Record(ctx, in)
	metrics.AnalyticsWriteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AnalyticsEventsTotal.WithLabelValues(string(in.EventType), "failed").Inc()
		r.log.Error().Err(err).
			Str("event_type", string(in.EventType)).
			Str("page", in.Page).
			Int("worker_id", id).
			Msg("analytics event write failed")
		return
	}
	metrics.AnalyticsEventsTotal.WithLabelValues(string(in.EventType), "recorded").Inc()
}
