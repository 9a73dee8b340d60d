package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/restq/restq/internal/wire"
)

// CurlCommand renders the request as a shell-invocable curl command.
//
// GET requests use curl -G with one -d "key=value" continuation line
// per parameter. Each key and value is percent-encoded independently
// with the same whitelist rule as the full path - curl joins -d fields
// with & itself, so the pre-joined query string is never used here.
func CurlCommand(baseURL string, req *wire.Request) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}

	target := base.Host + strings.TrimSuffix(base.Path, "/") + req.Path
	if base.Scheme != "" {
		target = base.Scheme + "://" + target
	}

	lines := []string{"curl -G " + target}
	for _, pair := range req.Params.Pairs() {
		lines = append(lines, fmt.Sprintf("  -d \"%s=%s\"",
			wire.PercentEncode(pair.Key),
			wire.PercentEncode(pair.Value)))
	}
	return strings.Join(lines, " \\\n"), nil
}
