// Package clients holds thin HTTP clients for the external detector
// services. The detectors own the model technology; from here they are just
// sources of presence-interval JSON.
package clients

import (
	"net/http"
	"time"
)

type HTTP struct{ c *http.Client }

func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &HTTP{c: &http.Client{Timeout: timeout}}
}
