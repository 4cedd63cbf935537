package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by any repository when the requested record does
// not exist. Backends wrap it with entity context.
var ErrNotFound = goerr.New("record not found")
