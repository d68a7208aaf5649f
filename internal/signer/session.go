// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer implements the remote signer's session loop (C5): a
// single-threaded, blocking request/response loop over one stream per
// validator connection.
package signer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/luxfi/consensus/metrics"
	"github.com/luxfi/consensus/pkg/wire"
	logpkg "github.com/luxfi/log"
)

// Keyring is the signer's only cross-session shared resource. Sign must
// be safe for concurrent use by multiple sessions.
type Keyring interface {
	Sign(pk [32]byte, msg []byte) ([64]byte, error)
}

// Transport is the stream a session reads requests from and writes
// responses to. A plain net.Conn satisfies it directly. Transport
// encryption is out of scope for this repo; any future encrypted
// implementation plugs in here without changing the session loop.
type Transport interface {
	io.Reader
	io.Writer
	Close() error
}

// State is one of the session's four lifecycle states.
type State int

const (
	StateConnected State = iota
	StateServing
	StateSigning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateServing:
		return "serving"
	case StateSigning:
		return "signing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session runs the request/response loop for one validator connection.
// It is not safe for concurrent use: exactly one goroutine should call
// Run for a given Session.
type Session struct {
	transport Transport
	keyring   Keyring
	log       logpkg.Logger
	metrics   *metrics.Metrics

	// debug gates acceptance of the PoisonPill sentinel.
	debug bool

	state State
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithDebug enables PoisonPill acceptance. Production signers should
// never set this.
func WithDebug(debug bool) Option {
	return func(s *Session) { s.debug = debug }
}

// WithMetrics attaches a metrics sink. Without it, metrics are skipped.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// New returns a Session in StateConnected.
func New(transport Transport, kr Keyring, log logpkg.Logger, opts ...Option) *Session {
	s := &Session{
		transport: transport,
		keyring:   kr,
		log:       log,
		state:     StateConnected,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// errPoisonPill is returned internally by handleFrame to signal a clean
// shutdown requested by the peer; it never escapes Run as an error.
var errPoisonPill = errors.New("signer: poison pill received")

// Run drives the session loop to completion: it alternates strictly
// between reading one request frame and writing one response frame until
// the stream is closed, a PoisonPill is accepted, or a fatal codec or
// keyring error occurs. Run always closes the transport before
// returning.
func (s *Session) Run(ctx context.Context) error {
	defer s.transport.Close()

	if s.metrics != nil {
		s.metrics.SessionsActive.Inc()
		defer s.metrics.SessionsActive.Dec()
	}

	s.setState(StateServing)
	r := bufio.NewReader(s.transport)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := wire.ReadFrame(r)
		if err != nil {
			// wire.ReadFrame reports both a clean peer disconnect and a
			// frame cut off mid-read as ErrTruncated; either way there is
			// no partial response to send back, so both close cleanly.
			if errors.Is(err, wire.ErrTruncated) {
				s.log.Debug("session stream closed", "state", s.state.String())
				s.setState(StateClosed)
				return nil
			}
			s.log.Error("session read failed", "error", err)
			s.setState(StateClosed)
			return fmt.Errorf("read frame: %w", err)
		}

		start := time.Now()
		resp, err := s.handleFrame(frame)
		if s.metrics != nil {
			s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
		}

		if err != nil {
			if errors.Is(err, errPoisonPill) {
				s.log.Info("poison pill accepted, terminating session")
				s.setState(StateClosed)
				return nil
			}
			s.log.Error("session request failed", "error", err)
			s.setState(StateClosed)
			return err
		}

		if _, err := s.transport.Write(resp); err != nil {
			s.log.Error("session write failed", "error", err)
			s.setState(StateClosed)
			return fmt.Errorf("write response: %w", err)
		}
	}
}

// handleFrame dispatches one already-read frame: PoisonPill (if enabled)
// terminates the session, anything else is decoded as a SignRequest and
// signed.
func (s *Session) handleFrame(frame []byte) ([]byte, error) {
	if wire.IsPoisonPill(frame) {
		if !s.debug {
			return nil, fmt.Errorf("signer: poison pill rejected: debug mode disabled")
		}
		return nil, errPoisonPill
	}

	s.setState(StateSigning)
	defer s.setState(StateServing)

	req, err := wire.DecodeSignRequest(frame)
	if err != nil {
		s.countOutcome("decode_error")
		return nil, fmt.Errorf("decode sign request: %w", err)
	}

	sig, err := s.keyring.Sign(req.PublicKey, req.Msg)
	if err != nil {
		s.countOutcome("unknown_key")
		return nil, fmt.Errorf("sign: %w", err)
	}

	s.countOutcome("ok")
	return wire.EncodeSignResponse(wire.SignResponse{Sig: sig}), nil
}

func (s *Session) setState(state State) {
	s.log.Debug("session state transition", "from", s.state.String(), "to", state.String())
	s.state = state
}

func (s *Session) countOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.SignRequests.WithLabelValues(outcome).Inc()
	}
}
