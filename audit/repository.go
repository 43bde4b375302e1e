// audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

const (
	syncIndex         = "sync-audit"
	verificationIndex = "chat-verification-audit"
)

type Repository interface {
	LogSync(ctx context.Context, log SyncLog) error
	LogVerification(ctx context.Context, log VerificationLog) error
	QuerySyncLogs(ctx context.Context, from, to time.Time, source string) ([]SyncLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

func (r *ElasticsearchRepository) index(ctx context.Context, indexName, docID string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: docID,
		Body:       strings.NewReader(string(data)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// LogSync indexes one sync attempt, keyed by its run ID.
func (r *ElasticsearchRepository) LogSync(ctx context.Context, log SyncLog) error {
	return r.index(ctx, syncIndex, log.RunID, log)
}

// LogVerification indexes one chat verification outcome.
func (r *ElasticsearchRepository) LogVerification(ctx context.Context, log VerificationLog) error {
	return r.index(ctx, verificationIndex, uuid.New().String(), log)
}

// QuerySyncLogs searches sync attempts within a time frame, optionally
// filtered by source.
func (r *ElasticsearchRepository) QuerySyncLogs(ctx context.Context, from, to time.Time, source string) ([]SyncLog, error) {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}

	if source != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{
				"source": source,
			},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": must,
			},
		},
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(syncIndex),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var rmap map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return nil, err
	}

	hits := rmap["hits"].(map[string]interface{})["hits"].([]interface{})
	logs := make([]SyncLog, len(hits))
	for i, hit := range hits {
		doc := hit.(map[string]interface{})["_source"]
		data, _ := json.Marshal(doc)
		json.Unmarshal(data, &logs[i])
	}

	return logs, nil
}
