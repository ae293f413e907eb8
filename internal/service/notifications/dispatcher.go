package notifications

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Result какие каналы доставили уведомление
type Result struct {
	EmailSent bool
	ChatSent  bool
}

// Dispatcher рассылает уведомления о новой записи по всем каналам
// Каналы работают параллельно и независимо; ошибки только логируются
type Dispatcher struct {
	email   Channel
	chat    Channel
	timeout time.Duration
	metrics Metrics
	log     Logger

	inflight sync.WaitGroup
}

// NewDispatcher создает диспетчер; timeout ограничивает фоновую доставку
func NewDispatcher(email, chat Channel, timeout time.Duration, metrics Metrics, log Logger) *Dispatcher {
	return &Dispatcher{
		email:   email,
		chat:    chat,
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}
}

// Notify доставляет уведомление и ждет оба канала
func (d *Dispatcher) Notify(ctx context.Context, booking *domain.Booking) Result {
	var emailSent, chatSent atomic.Bool
	d.notify(ctx, booking, &emailSent, &chatSent)
	return Result{EmailSent: emailSent.Load(), ChatSent: chatSent.Load()}
}

// Dispatch запускает доставку в фоне, не привязанном к контексту запроса
// Ждет не дольше wait и возвращает флаги каналов, успевших отправить; доставка
// остальных продолжается.
func (d *Dispatcher) Dispatch(booking *domain.Booking, wait time.Duration) Result {
	var emailSent, chatSent atomic.Bool
	snapshot := *booking
	done := make(chan struct{})

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		defer close(done)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		d.notify(ctx, &snapshot, &emailSent, &chatSent)
	}()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		d.log.Info("Notifications: booking_id=%d delivery still in progress after %s", booking.ID, wait)
	}

	return Result{EmailSent: emailSent.Load(), ChatSent: chatSent.Load()}
}

// Wait ждет завершения фоновых доставок или отмены ctx
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) notify(ctx context.Context, booking *domain.Booking, emailSent, chatSent *atomic.Bool) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		emailSent.Store(d.send(ctx, d.email, booking))
	}()
	go func() {
		defer wg.Done()
		chatSent.Store(d.send(ctx, d.chat, booking))
	}()
	wg.Wait()
}

func (d *Dispatcher) send(ctx context.Context, ch Channel, booking *domain.Booking) (sent bool) {
	if ch == nil || !ch.Enabled() {
		if ch != nil {
			d.metrics.IncNotification(ch.Name(), OutcomeSkipped)
			d.log.Warn("Notifications: channel %s not configured, skipping booking_id=%d", ch.Name(), booking.ID)
		}
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Notifications: channel %s panicked for booking_id=%d: %v", ch.Name(), booking.ID, r)
			d.metrics.IncNotification(ch.Name(), OutcomeFailed)
			sent = false
		}
	}()

	if err := ch.Send(ctx, booking); err != nil {
		d.log.Error("Notifications: channel %s failed for booking_id=%d: %v", ch.Name(), booking.ID, err)
		d.metrics.IncNotification(ch.Name(), OutcomeFailed)
		return false
	}

	d.metrics.IncNotification(ch.Name(), OutcomeSent)
	return true
}
