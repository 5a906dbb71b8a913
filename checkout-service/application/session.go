package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/pkg/errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrSessionNotReady = errors.New("session checkout is still loading")
)

const (
	defaultMailboxSize = 32
	closeTimeout       = 5 * time.Second
)

// SessionConfig describes one checkout session
type SessionConfig struct {
	ID           string
	CheckoutID   string
	Dependencies domain.Dependencies
	Options      domain.Options
	MailboxSize  int
	// OnClose runs once the event loop stopped
	OnClose func()
}

// Snapshot is what the presentation layer renders
type Snapshot struct {
	SessionID        string
	CheckoutID       string
	State            domain.State
	Steps            domain.Steps
	CurrentStep      domain.StepType
	CustomerViewType domain.CustomerViewType
	IsEmbedded       bool
	IsLoaded         bool
	Redirect         *domain.Redirect
	Styles           domain.Styles
	Version          int64
}

// Session owns one orchestrator and serialises every event into it on a single
// goroutine
type Session struct {
	ID         string
	CheckoutID string

	orchestrator *domain.Orchestrator
	mailbox      chan func()
	done         chan struct{}
	ready        chan struct{}
	closeOnce    sync.Once
	readyOnce    sync.Once

	ctx    context.Context
	cancel context.CancelFunc

	// touched only on the session goroutine
	loaded   bool
	version  int64
	redirect *domain.Redirect

	styles  *styleSheet
	onClose func()
}

// NewSession creates the session and starts its event loop
func NewSession(cfg SessionConfig) *Session {
	size := cfg.MailboxSize
	if size <= 0 {
		size = defaultMailboxSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:         cfg.ID,
		CheckoutID: cfg.CheckoutID,
		mailbox:    make(chan func(), size),
		done:       make(chan struct{}),
		ready:      make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		styles:     &styleSheet{styles: domain.Styles{}},
		onClose:    cfg.OnClose,
	}

	deps := cfg.Dependencies
	deps.Redirector = redirectRecorder{session: s}
	deps.Stylesheet = s.styles
	if deps.Consignments != nil {
		deps.Consignments = &mailboxSubscriber{inner: deps.Consignments, session: s}
	}

	opts := cfg.Options
	opts.CheckoutID = cfg.CheckoutID
	s.orchestrator = domain.NewOrchestrator(deps, opts)
	s.orchestrator.OnCommit(func(domain.State) {
		s.version++
	})

	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case <-s.done:
			return
		case fn := <-s.mailbox:
			fn()
		}
	}
}

// Start loads the checkout in the background; the result is settled on the session
// goroutine
func (s *Session) Start() {
	go func() {
		checkout, err := s.orchestrator.Load(s.ctx, s.CheckoutID)
		posted := s.post(func(o *domain.Orchestrator) {
			defer s.markReady()
			s.loaded = true
			if err := o.HandleLoaded(checkout, err); err != nil && !errors.Is(err, domain.ErrOrchestratorClosed) {
				slog.Warn("Checkout session failed to initialize",
					logging.SessionID(s.ID),
					logging.CheckoutID(s.CheckoutID),
					logging.Error(err))
			}
		})
		if !posted {
			s.markReady()
		}
	}()
}

// Ready is closed once the initial load settled
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

func (s *Session) markReady() {
	s.readyOnce.Do(func() {
		close(s.ready)
	})
}

// Do runs fn on the session goroutine and waits for it to finish
func (s *Session) Do(ctx context.Context, fn func(o *domain.Orchestrator) error) error {
	result := make(chan error, 1)
	task := func() {
		result <- fn(s.orchestrator)
	}

	select {
	case s.mailbox <- task:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post queues fn without waiting. It reports false once the session is closed.
func (s *Session) post(fn func(o *domain.Orchestrator)) bool {
	select {
	case s.mailbox <- func() { fn(s.orchestrator) }:
		return true
	case <-s.done:
		return false
	}
}

// Snapshot reads the session state on the session goroutine
func (s *Session) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap *Snapshot
	err := s.Do(ctx, func(o *domain.Orchestrator) error {
		snap = s.snapshot(o)
		return nil
	})
	return snap, err
}

func (s *Session) snapshot(o *domain.Orchestrator) *Snapshot {
	state := o.State()
	snap := &Snapshot{
		SessionID:        s.ID,
		CheckoutID:       s.CheckoutID,
		State:            state,
		CurrentStep:      state.CurrentStep(),
		CustomerViewType: o.CustomerViewType(),
		IsEmbedded:       o.IsEmbedded(),
		IsLoaded:         s.loaded,
		Styles:           s.styles.snapshot(),
		Version:          s.version,
	}
	if s.loaded {
		snap.Steps = o.Steps()
	}
	if s.redirect != nil {
		r := *s.redirect
		snap.Redirect = &r
	}
	return snap
}

// Close stops the event loop and releases the consignment subscription exactly once
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := s.Do(ctx, func(o *domain.Orchestrator) error {
			o.Close()
			return nil
		}); err != nil {
			slog.Warn("Checkout session closed without releasing its subscription",
				logging.SessionID(s.ID),
				logging.Error(err))
		}
		close(s.done)
		s.markReady()
		if s.onClose != nil {
			s.onClose()
		}
	})
}

// Done is closed once the session was closed
func (s *Session) Done() <-chan struct{} {
	return s.done
}

type redirectRecorder struct {
	session *Session
}

// Redirect runs as a trailing effect on the session goroutine
func (r redirectRecorder) Redirect(redirect domain.Redirect) {
	r.session.redirect = &redirect
	slog.Info("Checkout session redirecting",
		logging.SessionID(r.session.ID),
		slog.String("url", redirect.URL))
}

// styleSheet is written from the host connection goroutine and read by snapshots
type styleSheet struct {
	mu     sync.RWMutex
	styles domain.Styles
}

func (s *styleSheet) Append(styles domain.Styles) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range styles {
		s.styles[k] = v
	}
}

func (s *styleSheet) snapshot() domain.Styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.styles) == 0 {
		return nil
	}
	res := make(domain.Styles, len(s.styles))
	for k, v := range s.styles {
		res[k] = v
	}
	return res
}

// mailboxSubscriber delivers consignment pushes on the session goroutine
type mailboxSubscriber struct {
	inner   domain.ConsignmentSubscriber
	session *Session
}

func (m *mailboxSubscriber) SubscribeToConsignments(
	checkoutID string, fn func(*domain.Checkout),
) func() {
	return m.inner.SubscribeToConsignments(checkoutID, func(checkout *domain.Checkout) {
		m.session.post(func(*domain.Orchestrator) {
			fn(checkout)
		})
	})
}
