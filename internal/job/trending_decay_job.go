package job

import (
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// decayWindow 热度统计窗口，窗口外无新行为的资源归零
const decayWindow = 24 * time.Hour

// decayTimeout 单次衰减任务的执行上限
const decayTimeout = 5 * time.Minute

// TrendingDecayJob 每小时清理过期热度，防止旧爆款长期霸榜
type TrendingDecayJob struct {
	trendingRepo repository.TrendingRepo
}

func NewTrendingDecayJob(trendingRepo repository.TrendingRepo) *TrendingDecayJob {
	return &TrendingDecayJob{trendingRepo: trendingRepo}
}

func (s *TrendingDecayJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), decayTimeout)
	defer cancel()

	cutoff := time.Now().Add(-decayWindow)
	affected, err := s.trendingRepo.ResetStale(ctx, cutoff)
	if err != nil {
		log.Error("热度衰减任务失败", "err", err)
		return
	}
	log.Info("热度衰减任务完成", "reset", affected, "cutoff", cutoff)
}
