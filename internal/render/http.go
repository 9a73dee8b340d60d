package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/restq/restq/internal/wire"
)

// HTTPText renders the request as a normalized two-line HTTP/1.1
// preamble: the request line and the Host header. The base URL's path
// prefix, if any, is prepended to the request's full path.
func HTTPText(baseURL string, req *wire.Request) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	prefix := strings.TrimSuffix(base.Path, "/")
	return fmt.Sprintf("%s %s%s HTTP/1.1\nHost: %s\n", req.Method, prefix, req.FullPath(), base.Host), nil
}
