package storefront

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/eringen/pikalba/backend"
)

// Status is the state of a newsletter signup.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// CanTransition reports whether the form may move from s to next.
// Only a submission leaves idle, success or error, and only its outcome
// leaves loading.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusIdle, StatusSuccess, StatusError:
		return next == StatusLoading
	case StatusLoading:
		return next == StatusSuccess || next == StatusError
	}
	return false
}

// Newsletter is the signup form: a captured email address and the status of
// the last submission.
type Newsletter struct {
	sub    Subscriber
	log    Logger
	strict bool

	mu     sync.Mutex
	email  string
	status Status
}

// NewNewsletter returns an idle form posting to sub. With strict unset, a
// response with an error status still counts as a successful signup; only
// transport failures are errors.
func NewNewsletter(sub Subscriber, log Logger, strict bool) *Newsletter {
	if log == nil {
		log = nopLogger{}
	}
	return &Newsletter{sub: sub, log: log, strict: strict}
}

// SetEmail replaces the captured address.
func (n *Newsletter) SetEmail(email string) {
	n.mu.Lock()
	n.email = email
	n.mu.Unlock()
}

// Email returns the captured address.
func (n *Newsletter) Email() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.email
}

// Status returns the current submission status.
func (n *Newsletter) Status() Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// Submit posts the captured address and returns the resulting status.
// With no address, or with a submission already in flight, it does nothing
// and returns the current status. On success the address is cleared.
func (n *Newsletter) Submit(ctx context.Context) Status {
	n.mu.Lock()
	email := n.email
	if email == "" || !n.status.CanTransition(StatusLoading) {
		s := n.status
		n.mu.Unlock()
		return s
	}
	n.status = StatusLoading
	n.mu.Unlock()

	err := n.sub.Subscribe(ctx, email)
	if err != nil && !n.strict {
		var se *backend.StatusError
		if errors.As(err, &se) {
			n.log.Debugf("newsletter: treating status %d as accepted", se.Code)
			err = nil
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if err != nil {
		n.log.Errorf("newsletter: subscribe failed: %v", err)
		n.status = StatusError
		return n.status
	}
	n.status = StatusSuccess
	n.email = ""
	return n.status
}
