package services

import (
	"sync"
	"time"

	"transaction-analyzer/internal/models"
)

const DefaultDismissAfter = 3 * time.Second

// TimerStopper is the part of *time.Timer the center needs
type TimerStopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) TimerStopper

type NotificationOption func(*NotificationCenter)

// WithAfterFunc replaces the timer factory, mainly so tests can fire
// dismissals by hand.
func WithAfterFunc(fn func(d time.Duration, f func()) TimerStopper) NotificationOption {
	return func(n *NotificationCenter) {
		n.afterFunc = fn
	}
}

// NotificationCenter keeps at most one transient notification. A newer
// notification replaces the current one and restarts the dismissal timer.
type NotificationCenter struct {
	mu           sync.Mutex
	current      *models.Notification
	seq          uint64
	timer        TimerStopper
	closed       bool
	dismissAfter time.Duration
	afterFunc    afterFunc
}

func NewNotificationCenter(dismissAfter time.Duration, opts ...NotificationOption) NotificationCenterInterface {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}

	n := &NotificationCenter{
		dismissAfter: dismissAfter,
		afterFunc: func(d time.Duration, f func()) TimerStopper {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *NotificationCenter) Notify(kind models.NotificationKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	n.stopTimer()
	n.seq++
	seq := n.seq
	n.current = &models.Notification{Kind: kind, Message: message}
	n.timer = n.afterFunc(n.dismissAfter, func() { n.expire(seq) })
}

// expire clears the notification scheduled under seq. A timer that fired
// after a newer Notify or Clear finds a different seq and does nothing.
func (n *NotificationCenter) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || seq != n.seq {
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *NotificationCenter) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.seq++
	n.current = nil
}

func (n *NotificationCenter) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	cp := *n.current
	return &cp
}

func (n *NotificationCenter) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.seq++
	n.current = nil
	n.closed = true
}

func (n *NotificationCenter) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
