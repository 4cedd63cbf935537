package types

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidEnum is returned when a value outside a closed enumeration is
// supplied. This is always a caller bug, not a runtime condition.
var ErrInvalidEnum = goerr.New("value is not a member of the enumeration")
