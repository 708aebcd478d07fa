// Package redirect drives one short-link visit from slug to navigation.
package redirect

import (
	"context"
	"sync"
	"time"

	"deeplinker/internal/apps"
	"deeplinker/internal/config"
	"deeplinker/internal/domain"
	"deeplinker/internal/platform"
)

// Phase is a session's position in the redirect lifecycle. Transitions only
// move forward; Errored is reachable from Loading only, since nothing after
// a successful resolution can fail.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseCountingDown
	PhaseNavigating
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseCountingDown:
		return "counting-down"
	case PhaseNavigating:
		return "navigating"
	case PhaseErrored:
		return "error"
	default:
		return "unknown"
	}
}

type Resolver interface {
	Resolve(ctx context.Context, slug string) (domain.Link, error)
	TargetFor(link domain.Link, p platform.Platform) string
}

type Tracker interface {
	Track(e domain.ClickEvent)
}

// Request carries the per-visit client metadata a session needs.
type Request struct {
	Slug      string
	IPAddress string
	UserAgent string
	Referrer  string
}

// Session is the transient state machine behind one redirect page view.
// It lives for exactly one visit: repeated visits to the same slug get
// independent sessions and nothing is memoized across them.
type Session struct {
	cfg      config.RedirectConfig
	resolver Resolver
	tracker  Tracker
	req      Request
	platform platform.Platform

	// tick is the countdown granularity, one second in production.
	// Injectable so tests can run a full countdown without sleeping.
	tick time.Duration

	mu        sync.Mutex
	phase     Phase
	link      domain.Link
	targetURL string
	err       error
	remaining int

	skipCh chan struct{}
}

func NewSession(cfg config.RedirectConfig, resolver Resolver, tracker Tracker, req Request) *Session {
	return &Session{
		cfg:      cfg,
		resolver: resolver,
		tracker:  tracker,
		req:      req,
		platform: platform.Detect(req.UserAgent),
		tick:     time.Second,
		skipCh:   make(chan struct{}, 1),
	}
}

// WithTickInterval overrides the countdown tick. Test hook.
func (s *Session) WithTickInterval(d time.Duration) *Session {
	s.tick = d
	return s
}

// Start resolves the slug and computes the navigation target. On resolver
// failure the session terminates in PhaseErrored and the error is returned
// for the caller to render. On success the click is handed to the tracker,
// which is never awaited: a slow or failing sink cannot delay the visitor.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoading {
		return s.err
	}

	link, err := s.resolver.Resolve(ctx, s.req.Slug)
	if err != nil {
		s.phase = PhaseErrored
		s.err = err
		return err
	}

	s.tracker.Track(domain.ClickEvent{
		LinkID:    link.ID,
		ClickedAt: time.Now(),
		IPAddress: s.req.IPAddress,
		UserAgent: s.req.UserAgent,
		Referrer:  s.req.Referrer,
		Device:    s.platform.String(),
		App:       apps.ClassifyRaw(link.OriginalURL).String(),
	})

	s.link = link
	s.targetURL = s.resolver.TargetFor(link, s.platform)
	s.remaining = s.cfg.CountdownSeconds
	s.phase = PhaseReady

	return nil
}

// Run walks the countdown and performs the navigation exactly once, either
// when the counter hits zero or when Skip fires early. Cancelling ctx tears
// the session down: the ticker stops and no transition happens afterwards.
func (s *Session) Run(ctx context.Context, navigate func(target string)) error {
	s.mu.Lock()
	if s.phase != PhaseReady {
		err := s.err
		s.mu.Unlock()
		return err
	}
	if s.remaining <= 0 {
		s.navigateLocked(navigate)
		s.mu.Unlock()
		return nil
	}
	s.phase = PhaseCountingDown
	s.mu.Unlock()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.skipCh:
			s.mu.Lock()
			s.navigateLocked(navigate)
			s.mu.Unlock()
			return nil
		case <-ticker.C:
			s.mu.Lock()
			s.remaining--
			if s.remaining <= 0 {
				s.navigateLocked(navigate)
				s.mu.Unlock()
				return nil
			}
			s.mu.Unlock()
		}
	}
}

func (s *Session) navigateLocked(navigate func(target string)) {
	if s.phase == PhaseNavigating {
		return
	}
	s.phase = PhaseNavigating
	navigate(s.targetURL)
}

// Skip requests early navigation. It is a no-op outside PhaseCountingDown
// and idempotent within it: however many times the control fires, the
// navigation happens once. Skip availability is unconditional once the
// countdown runs; the ShowSkipButton config flag only controls whether the
// control is rendered.
func (s *Session) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCountingDown {
		return
	}
	select {
	case s.skipCh <- struct{}{}:
	default:
	}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) TargetURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targetURL
}

func (s *Session) Link() domain.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.link
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
