package store

import (
	"context"
	"encoding/json"
	"net/url"
)

// Gateway is the slice of the API client the containers depend on.
// *api.Client satisfies it; tests substitute fakes.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}
