package mindly

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication (malformed requests, unexpected
// responses, auth failures). Dumps include headers and full bodies, so this
// belongs in development environments only.
type debugTransport struct{ base http.RoundTripper }

func defaultTransport() http.RoundTripper { return http.DefaultTransport }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// MINDLY_DEBUG=true targets this client alone; DEBUG=true is honoured for
// broader development workflows. Both are case-sensitive.
func debugLoggingRequested() bool {
	return os.Getenv("MINDLY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
