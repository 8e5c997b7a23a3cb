package kafka

import (
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/es"
	"Craftstone/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
)

// ResourcesHandler 消费 resources 表的 CDC 消息，维护 ES 建议索引
// 只有 public 资源进索引，可见性收回时文档一并删除
type ResourcesHandler struct {
	resourceESRepo es.ResourceRepo
}

func NewResourcesHandler(resourceESRepo es.ResourceRepo) *ResourcesHandler {
	return &ResourcesHandler{
		resourceESRepo: resourceESRepo,
	}
}

func (s *ResourcesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("resource consumer setup")
	return nil
}

func (s *ResourcesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("resource consumer cleanup")
	return nil
}

func (s *ResourcesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-resource consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-resource process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ResourcesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "resources")
	if err != nil {
		return err
	}

	row := canalMsg.Data[0]
	resourceID := rowString(row, "id")
	if resourceID == "" {
		return fmt.Errorf("canal message missing resource id")
	}

	if canalMsg.Type == DELETE {
		return s.resourceESRepo.DeleteResource(ctx, resourceID)
	}

	resource := s.toESModel(row)

	// 非公开资源不进建议索引
	if resource.Visibility != model.VisibilityPublic {
		return s.resourceESRepo.DeleteResource(ctx, resourceID)
	}

	return s.resourceESRepo.IndexResource(ctx, resource, canalMsg.TS)
}

func (s *ResourcesHandler) toESModel(row map[string]interface{}) *es.ResourceES {
	// 历史数据可能没有 slug，由标题推导
	slug := rowString(row, "slug")
	if slug == "" {
		slug = util.Slugify(rowString(row, "title"))
	}
	return &es.ResourceES{
		ID:             rowString(row, "id"),
		Title:          rowString(row, "title"),
		Slug:           slug,
		Type:           rowString(row, "type"),
		Description:    rowString(row, "description"),
		Visibility:     rowString(row, "visibility"),
		TotalDownloads: rowInt64(row, "total_downloads"),
		UpdatedAt:      rowTime(row, "updated_at"),
	}
}

func rowString(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func rowInt64(row map[string]interface{}, key string) int64 {
	switch v := row[key].(type) {
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case float64:
		return int64(v)
	}
	return 0
}

func rowTime(row map[string]interface{}, key string) time.Time {
	if v, ok := row[key].(string); ok {
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Time{}
}
