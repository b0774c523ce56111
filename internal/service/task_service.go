package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	rep "todoList/internal/repository"

	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

type TaskService struct {
	repo  TaskRepository
	now   func() time.Time
	newID func() string
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Completed   *bool
	Priority    *task.Priority
}

func NewTaskService(repo TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		repo:  repo,
		now:   defaultNow,
		newID: defaultID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*task.Task, error) {
	now := s.now()
	newTask := &task.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    task.DefaultPriority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Completed != nil {
		newTask.Completed = *in.Completed
	}
	if in.Priority != nil {
		newTask.Priority = *in.Priority
	}

	if err := newTask.Validate(); err != nil {
		logger.Info("Service: Задача не прошла валидацию", zap.Error(err))
		return nil, FromValidation(err)
	}

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", newTask.ID),
		zap.String("priority", string(newTask.Priority)))
	return newTask, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return filter.Apply(tasks), nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*task.Task, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "получение задачи")
	}
	return found, nil
}

// UpdateTask применяет частичное обновление; updated_at обновляется даже для пустого patch
func (s *TaskService) UpdateTask(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	if err := patch.Validate(); err != nil {
		logger.Info("Service: Обновление не прошло валидацию", zap.String("task_id", id), zap.Error(err))
		return nil, FromValidation(err)
	}

	updated, err := s.repo.Update(ctx, id, func(t *task.Task) error {
		patch.Apply(t, s.now())
		if t.UpdatedAt.Before(t.CreatedAt) {
			t.UpdatedAt = t.CreatedAt
		}
		if err := t.Validate(); err != nil {
			return FromValidation(err)
		}
		return nil
	})
	if err != nil {
		var businessErr *BusinessError
		if errors.As(err, &businessErr) {
			return nil, businessErr
		}
		return nil, s.mapRepoError(err, id, "обновление задачи")
	}

	logger.Info("Service: Задача обновлена", zap.String("task_id", id), zap.Bool("empty_patch", patch.Empty()))
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "удаление задачи")
	}
	logger.Info("Service: Задача удалена", zap.String("task_id", id))
	return nil
}

func (s *TaskService) GetStats(ctx context.Context) (task.Stats, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return task.Stats{}, fmt.Errorf("подсчёт статистики: %w", err)
	}
	return task.ComputeStats(tasks), nil
}

func (s *TaskService) mapRepoError(err error, id, operation string) error {
	if errors.Is(err, rep.ErrNotFound) {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id), zap.String("operation", operation))
		return NewNotFound(id)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
