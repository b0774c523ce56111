package handlers

import (
	"context"
	"todoList/internal/models/task"
	"todoList/internal/service"
)

type Service interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, service.CreateTaskInput) (*task.Task, error)
	ListTasks(context.Context, task.Filter) ([]*task.Task, error)
	GetTask(context.Context, string) (*task.Task, error)
	UpdateTask(context.Context, string, task.Patch) (*task.Task, error)
	DeleteTask(context.Context, string) error
	GetStats(context.Context) (task.Stats, error)
}

var _ Service = (*service.TaskService)(nil)
