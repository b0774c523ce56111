package service

import (
	"context"
	"todoList/internal/models/task"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Create(context.Context, *task.Task) error
	GetByID(context.Context, string) (*task.Task, error)
	Update(context.Context, string, func(*task.Task) error) (*task.Task, error)
	Delete(context.Context, string) error
	List(context.Context) ([]*task.Task, error)
}
