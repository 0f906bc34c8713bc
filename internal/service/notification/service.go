package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/email"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/logger"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/metrics"
)

var (
	errQueueFull         = errors.New("notification queue is full")
	errDispatcherStopped = errors.New("notification dispatcher stopped")
)

// Service accepts contact form submissions and reports on their delivery.
type Service interface {
	SubmitBooking(ctx context.Context, req *model.BookingRequest) (model.Notification, error)
	SubmitInfoRequest(ctx context.Context, req *model.InfoRequest) (model.Notification, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Notification, error)
}

type Config struct {
	Workers   int
	QueueSize int
	// RetryAttempts is the total number of delivery attempts per job.
	RetryAttempts int
	RetryDelay    time.Duration
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration
	// LookupTTL is how long resolved service names are cached.
	LookupTTL time.Duration
}

func (c *Config) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 100
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 30 * time.Second
	}
	if c.LookupTTL <= 0 {
		c.LookupTTL = 10 * time.Minute
	}
}

type job struct {
	notification *model.Notification
	booking      *model.BookingRequest
	info         *model.InfoRequest
}

// Dispatcher queues mail jobs and delivers them from a pool of workers.
// Submissions never wait for delivery.
type Dispatcher struct {
	cfg      Config
	repo     repository.NotificationRepository
	services repository.ServiceRepository
	emailSvc email.Service
	metrics  *metrics.Metrics
	logger   *logger.Logger
	names    *cache.Cache

	jobs    chan job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(
	cfg Config,
	repo repository.NotificationRepository,
	services repository.ServiceRepository,
	emailSvc email.Service,
	m *metrics.Metrics,
	log *logger.Logger,
) *Dispatcher {
	cfg.setDefaults()
	if m == nil {
		m = metrics.New("notification", prometheus.NewRegistry())
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Dispatcher{
		cfg:      cfg,
		repo:     repo,
		services: services,
		emailSvc: emailSvc,
		metrics:  m,
		logger:   log,
		names:    cache.New(cfg.LookupTTL, 2*cfg.LookupTTL),
		jobs:     make(chan job, cfg.QueueSize),
	}
}

// Start launches the workers. They run until Stop is called; ctx is the
// parent of every delivery attempt.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Stop refuses new jobs, lets the workers drain the queue and waits for them.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) SubmitBooking(ctx context.Context, req *model.BookingRequest) (model.Notification, error) {
	return d.submit(ctx, job{
		notification: d.newNotification(model.NotificationKindBooking, req.Email),
		booking:      req,
	})
}

func (d *Dispatcher) SubmitInfoRequest(ctx context.Context, req *model.InfoRequest) (model.Notification, error) {
	return d.submit(ctx, job{
		notification: d.newNotification(model.NotificationKindInfoRequest, req.Email),
		info:         req,
	})
}

func (d *Dispatcher) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	n, err := d.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, apperrors.NotFound("notification", err)
	}
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return n, nil
}

func (d *Dispatcher) newNotification(kind model.NotificationKind, recipient string) *model.Notification {
	now := time.Now()
	return &model.Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Recipient: recipient,
		Status:    model.NotificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// submit records and enqueues j. A job that cannot be queued is marked
// failed; the submission itself still succeeds.
func (d *Dispatcher) submit(ctx context.Context, j job) (model.Notification, error) {
	n := j.notification
	log := d.logger.WithContext(ctx)

	if err := d.repo.Create(ctx, n); err != nil {
		log.Error(err, "failed to record notification", "notification_id", n.ID.String())
	}
	snapshot := *n

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.fail(ctx, j, errDispatcherStopped)
		return *n, nil
	}

	select {
	case d.jobs <- j:
		d.metrics.NotificationQueueSize.Set(float64(len(d.jobs)))
		return snapshot, nil
	default:
		d.fail(ctx, j, errQueueFull)
		return *n, nil
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()

	for j := range d.jobs {
		d.metrics.NotificationQueueSize.Set(float64(len(d.jobs)))
		d.process(ctx, j)
	}
}

func (d *Dispatcher) process(ctx context.Context, j job) {
	start := time.Now()
	err := d.deliver(ctx, j)
	d.metrics.MailLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		d.fail(ctx, j, err)
		return
	}

	n := j.notification
	now := time.Now()
	n.Status = model.NotificationStatusSent
	n.SentAt = &now
	n.UpdatedAt = now
	d.update(ctx, n)

	d.metrics.MailSent.WithLabelValues(string(n.Kind)).Inc()
	d.logger.Info("notification sent",
		"notification_id", n.ID.String(),
		"kind", string(n.Kind),
		"recipient", n.Recipient,
		"attempts", n.RetryCount+1,
	)
}

// deliver tries up to RetryAttempts times with a linear backoff. A missing
// service is not retried.
func (d *Dispatcher) deliver(ctx context.Context, j job) error {
	n := j.notification

	var err error
	for attempt := 0; attempt < d.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			n.Status = model.NotificationStatusRetrying
			n.RetryCount = attempt
			n.LastError = err.Error()
			n.UpdatedAt = time.Now()
			d.update(ctx, n)
			d.metrics.MailRetries.WithLabelValues(string(n.Kind)).Inc()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		err = d.attempt(ctx, j)
		if err == nil || apperrors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return err
}

func (d *Dispatcher) attempt(ctx context.Context, j job) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	msg, err := d.render(ctx, j)
	if err != nil {
		return err
	}
	if err := d.emailSvc.Send(ctx, msg); err != nil {
		return apperrors.MailDeliveryFailed(err)
	}
	return nil
}

func (d *Dispatcher) render(ctx context.Context, j job) (*email.Message, error) {
	switch {
	case j.booking != nil:
		service, err := d.serviceName(ctx, j.booking.Service)
		if err != nil {
			return nil, err
		}
		return email.Render(email.TemplateBooking, j.booking.Email, email.BookingData{
			Name:    j.booking.Name,
			Surname: j.booking.Surname,
			Date:    j.booking.Date,
			Service: service,
			Footer:  email.Footer,
		})
	case j.info != nil:
		return email.Render(email.TemplateInfoRequest, j.info.Email, email.InfoRequestData{
			Text:   j.info.Text,
			Footer: email.Footer,
		})
	default:
		return nil, apperrors.Internal(fmt.Errorf("notification %s has no payload", j.notification.ID))
	}
}

func (d *Dispatcher) serviceName(ctx context.Context, id int) (string, error) {
	key := fmt.Sprintf("service:%d", id)
	if name, found := d.names.Get(key); found {
		return name.(string), nil
	}

	name, err := d.services.Name(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.NotFound("service", err)
	}
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}

	d.names.SetDefault(key, name)
	return name, nil
}

func (d *Dispatcher) fail(ctx context.Context, j job, err error) {
	n := j.notification
	n.Status = model.NotificationStatusFailed
	n.LastError = err.Error()
	n.UpdatedAt = time.Now()
	d.update(ctx, n)

	d.metrics.MailFailed.WithLabelValues(string(n.Kind)).Inc()
	d.logger.Error(err, "notification failed",
		"notification_id", n.ID.String(),
		"kind", string(n.Kind),
		"recipient", n.Recipient,
		"retry_count", n.RetryCount,
	)
}

func (d *Dispatcher) update(ctx context.Context, n *model.Notification) {
	// Status must be recorded even when the caller's context is gone.
	if err := d.repo.Update(context.WithoutCancel(ctx), n); err != nil {
		d.logger.Error(err, "failed to update notification status", "notification_id", n.ID.String())
	}
}
