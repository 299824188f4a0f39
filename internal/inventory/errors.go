// Package inventory tracks which seats are booked on every scheduled
// run.  The sentinel error defined here lets callers separate a full
// bus from a genuine fault with errors.Is.
package inventory

import "errors"

// ErrNotEnoughSeats is returned by Allocate when the run holds fewer
// unbooked seats than the caller requested.  It describes a stable
// fact about the bucket at the moment of the call, not a transient
// condition, so nothing in this package retries.  Handlers should
// treat it as a normal outcome rather than a server failure.
var ErrNotEnoughSeats = errors.New("not enough seats available")
