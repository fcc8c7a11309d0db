package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecloudclub/threadpool/httpx"
)

// fetch pulls the body at url using the fluent httpx.Request builder,
// returning the raw bytes for a caller to parse or tokenize.
func fetch(ctx context.Context, url string) ([]byte, error) {
	resp := httpx.NewRequest(ctx, http.MethodGet, url).Do()
	body, err := resp.Bytes()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return body, nil
}
