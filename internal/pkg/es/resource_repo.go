package es

import (
	"Craftstone/internal/model"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const (
	NotFoundCode = 404
	ConflictCode = 409
)

type ResourceRepo interface {
	SuggestResources(ctx context.Context, keyword string, size int) ([]*ResourceES, error)
	IndexResource(ctx context.Context, resource *ResourceES, version int64) error
	DeleteResource(ctx context.Context, id string) error
}

type ResourceRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewResourceRepo(client *elasticsearch.TypedClient) ResourceRepo {
	return &ResourceRepoImpl{client: client}
}

// SuggestResources 标题前缀补全，按下载量倒序
func (s *ResourceRepoImpl) SuggestResources(ctx context.Context, keyword string, size int) ([]*ResourceES, error) {
	searchReq := s.client.Search().
		Index(ResourceIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  keyword,
							Fields: []string{"title^2", "title._2gram", "title._3gram", "description"},
						},
					},
				},
				Filter: []types.Query{
					{
						Term: map[string]types.TermQuery{
							"visibility": {Value: model.VisibilityPublic},
						},
					},
				},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"total_downloads": {Order: &sortorder.Desc},
		}}).
		Size(size)

	return s.executeSearch(ctx, searchReq)
}

// IndexResource 外部版本号写入，落后的 CDC 消息直接丢弃
func (s *ResourceRepoImpl) IndexResource(ctx context.Context, resource *ResourceES, version int64) error {
	_, err := s.client.Index(ResourceIndex).
		Id(resource.ID).
		Document(resource).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ResourceRepoImpl) DeleteResource(ctx context.Context, id string) error {
	_, err := s.client.Delete(ResourceIndex, id).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ResourceRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*ResourceES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ResourceES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var resource ResourceES
		if hit.Source_ == nil {
			continue
		}
		if err = json.Unmarshal(hit.Source_, &resource); err != nil {
			continue
		}
		results = append(results, &resource)
	}
	return results, nil
}
