package worker

import (
	"context"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/task"

	"go.uber.org/zap"
)

const DefaultInterval = 5 * time.Minute

type StatsProvider interface {
	GetStats(ctx context.Context) (task.Stats, error)
}

// StatsWorker периодически пишет в лог сводку по задачам.
type StatsWorker struct {
	stats    StatsProvider
	interval time.Duration
}

func NewStatsWorker(stats StatsProvider, interval *time.Duration) *StatsWorker {
	intervalToSet := DefaultInterval
	if interval != nil && *interval > 0 {
		intervalToSet = *interval
	}

	return &StatsWorker{
		stats:    stats,
		interval: intervalToSet,
	}
}

func (w *StatsWorker) Interval() time.Duration {
	return w.interval
}

func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: Запуск сбора статистики", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Сбор статистики останавливается")
			return
		}
	}
}

func (w *StatsWorker) Check(ctx context.Context) {
	start := time.Now()

	stats, err := w.stats.GetStats(ctx)
	if err != nil {
		logger.Warn("Worker: ошибка получения статистики", zap.Error(err))
		return
	}

	logger.Info(
		"Worker: Статистика задач",
		zap.Duration("ms", time.Since(start)),
		zap.Int("total", stats.TotalTasks),
		zap.Int("completed", stats.CompletedTasks),
		zap.Int("pending", stats.PendingTasks),
		zap.Float64("completion_rate", stats.CompletionRate),
		zap.Int("low", stats.PriorityBreakdown.Low),
		zap.Int("medium", stats.PriorityBreakdown.Medium),
		zap.Int("high", stats.PriorityBreakdown.High),
	)
}
