// Package service declares domain-level collaborators implemented by infrastructure.
package service

import "time"

// Clock is the source of "now" for time-dependent business rules.
type Clock interface {
	Now() time.Time
}
