// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time to use cases. Injectable so the
// recurring-expense generator can be tested against fixed dates.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
