// File: pool/errors.go
package pool

import "errors"

// ErrNoDelegates is the reply an ask-style message gets when the pool has
// no delegates to select from.
var ErrNoDelegates = errors.New("pool: no delegates available")
