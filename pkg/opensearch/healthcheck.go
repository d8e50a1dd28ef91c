package opensearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/searchkit/pkg/requestid"
)

// Healthcheck returns a readiness check that calls the cluster root endpoint.
// A request ID found in ctx is sent as X-Opaque-Id.
// The returned function is safe for concurrent use.
func Healthcheck(client *opensearch.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		opts := []func(*opensearchapi.InfoRequest){
			client.Info.WithContext(ctx),
			client.Info.WithErrorTrace(),
		}
		if id := requestid.FromContext(ctx); id != "" {
			opts = append(opts, client.Info.WithOpaqueID(id))
		}

		res, err := client.Info(opts...)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer res.Body.Close()

		if res.IsError() {
			return fmt.Errorf("%w: %s", ErrHealthcheckFailed, res.Status())
		}
		return nil
	}
}
