package opensearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2"
)

// ClusterInfo is the subset of the root endpoint response used for diagnostics.
type ClusterInfo struct {
	Name        string `json:"name" yaml:"name"`
	ClusterName string `json:"cluster_name" yaml:"cluster_name"`
	ClusterUUID string `json:"cluster_uuid" yaml:"cluster_uuid"`
	Version     struct {
		Number        string `json:"number" yaml:"number"`
		Distribution  string `json:"distribution" yaml:"distribution"`
		LuceneVersion string `json:"lucene_version" yaml:"lucene_version"`
	} `json:"version" yaml:"version"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// FetchInfo queries the cluster root endpoint.
func FetchInfo(ctx context.Context, client *opensearch.Client) (*ClusterInfo, error) {
	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, errors.Join(ErrHealthcheckFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrHealthcheckFailed, res.Status())
	}

	var info ClusterInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode cluster info: %w", err)
	}
	return &info, nil
}
