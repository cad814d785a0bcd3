// Package repositories defines the storage contracts the application
// services depend on. Implementations own the backing collections; the
// in-memory implementations under pkg/infrastructure/repositories/memory
// are the only ones today, but lifecycle logic never assumes that.
//
// Contract shared by every repository: Insert assigns identity, Update
// returns the stored entity or ErrNotFound, Delete reports success with a
// boolean. A missed lookup returns ErrNotFound; callers treat that as a
// normal outcome, not a failure to propagate.
package repositories

import "errors"

// ErrNotFound is returned by any lookup that does not match a record
var ErrNotFound = errors.New("not found")
