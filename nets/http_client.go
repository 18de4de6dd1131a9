package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// fetchTimeout bounds a whole program download.
const fetchTimeout = time.Minute

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: fetchTimeout,
		Transport: &http.Transport{
			// proxying is done by the dialer
			Proxy:       nil,
			DialContext: dialer.DialContext,
		},
	}
}
