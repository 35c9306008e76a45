// Package syncerr classifies synchronization failures so engines can choose between waiting, retrying,
// rolling back and stopping.
package syncerr

import (
	"errors"
	"fmt"
)

// Kind is the class of a synchronization failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNoNewData means the upstream head did not move.
	KindNoNewData
	// KindChainDivergence means a hash link did not match or the upstream head shrank.
	KindChainDivergence
	// KindTransientUpstream covers timeouts and single bad responses.
	KindTransientUpstream
	// KindUpstreamUnreachable means no provider could be reached.
	KindUpstreamUnreachable
	// KindMalformedInput means the upstream sent data that cannot be hashed.
	KindMalformedInput
)

func (k Kind) String() string {
	switch k {
	case KindNoNewData:
		return "no_new_data"
	case KindChainDivergence:
		return "chain_divergence"
	case KindTransientUpstream:
		return "transient_upstream"
	case KindUpstreamUnreachable:
		return "upstream_unreachable"
	case KindMalformedInput:
		return "malformed_input"
	default:
		return "unknown"
	}
}

// Error attaches a Kind to an underlying error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with kind. A nil err still produces an error carrying the kind.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NoNewData(op string) error { return New(KindNoNewData, op, nil) }

func ChainDivergence(op string, err error) error { return New(KindChainDivergence, op, err) }

func Transient(op string, err error) error { return New(KindTransientUpstream, op, err) }

func Unreachable(op string, err error) error { return New(KindUpstreamUnreachable, op, err) }

func Malformed(op string, err error) error { return New(KindMalformedInput, op, err) }

// KindOf returns the outermost Kind found in err's chain.
// Errors without a kind are treated as transient.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransientUpstream
}

// Is reports whether err carries kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsFatal reports whether err must stop the process.
func IsFatal(err error) bool {
	switch KindOf(err) {
	case KindUpstreamUnreachable, KindMalformedInput:
		return true
	default:
		return false
	}
}
