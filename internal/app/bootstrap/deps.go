// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/internhub/internal/app/gateway"
)

// Deps holds back-end dependencies for the app. InternHub keeps no
// database of its own; the internship REST service owns all durable
// state, and the gateway client is the only backend handle.
type Deps struct {
	Gateway *gateway.Client
}
