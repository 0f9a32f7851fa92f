package ports

import "context"

// Port: the HTTP transport collaborator. Hands back the raw response
// body for a GET. The fetcher owns timeouts; callers pass ctx for
// cancellation.
type PayloadFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
