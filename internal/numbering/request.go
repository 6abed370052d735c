package numbering

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// State is the position of a numbering request in its lifecycle.
type State string

const (
	StateNoNumberChosen            State = "NoNumberChosen"
	StateManualPending             State = "ManualPending"
	StateCollisionDetected         State = "CollisionDetected"
	StateAwaitingForceConfirmation State = "AwaitingForceConfirmation"
	StateAutoAllocated             State = "AutoAllocated"
	StateDirectAllocated           State = "DirectAllocated"
	StateForcedAllocated           State = "ForcedAllocated"
)

// Terminal reports whether the state yields a document number and ends the
// request.
func (s State) Terminal() bool {
	switch s {
	case StateAutoAllocated, StateDirectAllocated, StateForcedAllocated:
		return true
	}
	return false
}

// Request carries the state of one numbering request for one category.
//
// Force and collision state is scoped to the request, never to ambient
// session state, and is cleared unconditionally when the request reaches a
// terminal state — a force grant can never leak into a later request. Each
// request yields exactly one document number.
type Request struct {
	svc      *Service
	category models.Category
	state    State

	// Pending force confirmation: the operator has approved reusing exactly
	// forceNumber. Set by ConfirmForce, consumed by Resolve.
	forcePending bool
	forceNumber  int

	log zerolog.Logger
}

// NewRequest starts a numbering request for a category.
func NewRequest(svc *Service, category models.Category) *Request {
	return &Request{
		svc:      svc,
		category: category,
		state:    StateNoNumberChosen,
		log:      logger.WithComponent("numbering-request"),
	}
}

// State returns the request's current state.
func (r *Request) State() State {
	return r.state
}

// ConfirmForce records the operator's explicit approval to reuse a specific
// number. The subsequent Resolve call must resubmit the same number; any
// other number is rejected.
func (r *Request) ConfirmForce(raw string) error {
	if r.state.Terminal() {
		return fmt.Errorf("numbering request already completed (state: %s)", r.state)
	}
	n, err := parseManualNumber(raw)
	if err != nil {
		return err
	}

	r.forcePending = true
	r.forceNumber = n
	r.state = StateAwaitingForceConfirmation

	r.log.Warn().
		Str("category", string(r.category)).
		Str("number", Format(n, r.category)).
		Msg("Force confirmation recorded for document number reuse")

	return nil
}

// Resolve runs the request to completion. An empty raw input allocates the
// next sequential number; a numeric input selects that exact number, subject
// to collision detection unless the number is 1 or a matching force
// confirmation is pending.
func (r *Request) Resolve(raw string) (DocumentNumber, error) {
	if r.state.Terminal() {
		return DocumentNumber{}, fmt.Errorf("numbering request already completed (state: %s)", r.state)
	}

	// No manual input: plain sequential allocation
	if raw == "" {
		dn, err := r.svc.AllocateNext(r.category)
		if err != nil {
			return DocumentNumber{}, err
		}
		r.finish(StateAutoAllocated)
		return dn, nil
	}

	// Invalid input is rejected before any state transition
	n, err := parseManualNumber(raw)
	if err != nil {
		return DocumentNumber{}, err
	}

	if r.state == StateNoNumberChosen {
		r.state = StateManualPending
	}

	// Number 1 is exempt from collision checks: the conventional first
	// document is always allowed. Applied force-style so the mark rises to 1
	// from zero but is never lowered from a higher value.
	if n == 1 {
		if _, err := r.svc.SetExact(n, r.category, true); err != nil {
			return DocumentNumber{}, err
		}
		r.finish(StateDirectAllocated)
		return r.documentNumber(n), nil
	}

	if r.forcePending {
		if n != r.forceNumber {
			r.state = StateAwaitingForceConfirmation
			return DocumentNumber{}, fmt.Errorf("%w: confirmed %s, got %s",
				ErrForceMismatch, Format(r.forceNumber, r.category), Format(n, r.category))
		}
		if _, err := r.svc.SetExact(n, r.category, true); err != nil {
			return DocumentNumber{}, err
		}
		r.finish(StateForcedAllocated)
		return r.documentNumber(n), nil
	}

	ok, err := r.svc.SetExact(n, r.category, false)
	if err != nil {
		return DocumentNumber{}, err
	}
	if !ok {
		r.state = StateCollisionDetected
		return DocumentNumber{}, fmt.Errorf("%w: %s", ErrNumberCollision, Format(n, r.category))
	}

	r.finish(StateDirectAllocated)
	return r.documentNumber(n), nil
}

// finish moves the request to a terminal state and clears force state
// unconditionally, so a later request always starts clean.
func (r *Request) finish(terminal State) {
	r.state = terminal
	r.forcePending = false
	r.forceNumber = 0
}

func (r *Request) documentNumber(n int) DocumentNumber {
	return DocumentNumber{
		Category:  r.category,
		Value:     n,
		Formatted: Format(n, r.category),
	}
}

// parseManualNumber validates raw manual input: digits only, at least 1.
func parseManualNumber(raw string) (int, error) {
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return n, nil
}
