package dto

import (
	"time"
	"todoList/internal/models/task"
	"todoList/internal/service"
)

// CreateTaskRequest: description может быть null, completed и priority - нет
type CreateTaskRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitnil,max=1000"`
	Completed   Optional[bool]   `json:"completed"`
	Priority    Optional[string] `json:"priority"`
}

// UpdateTaskRequest: отсутствующее поле не меняется, null в description очищает описание
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
	Priority    Optional[string] `json:"priority"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RootResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (r CreateTaskRequest) ToInput() (service.CreateTaskInput, error) {
	if err := rejectNull(map[string]bool{
		"completed": r.Completed.Null,
		"priority":  r.Priority.Null,
	}); err != nil {
		return service.CreateTaskInput{}, err
	}

	in := service.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed.Ptr(),
	}
	if raw := r.Priority.Ptr(); raw != nil {
		p := task.Priority(*raw)
		if !p.Valid() {
			return service.CreateTaskInput{}, service.NewValidationError("priority", "must be one of: low, medium, high")
		}
		in.Priority = &p
	}
	return in, nil
}

func (r UpdateTaskRequest) ToPatch() (task.Patch, error) {
	if err := rejectNull(map[string]bool{
		"title":     r.Title.Null,
		"completed": r.Completed.Null,
		"priority":  r.Priority.Null,
	}); err != nil {
		return task.Patch{}, err
	}

	patch := task.Patch{
		Title:            r.Title.Ptr(),
		Description:      r.Description.Ptr(),
		ClearDescription: r.Description.Null,
		Completed:        r.Completed.Ptr(),
	}
	if raw := r.Priority.Ptr(); raw != nil {
		p := task.Priority(*raw)
		patch.Priority = &p
	}

	if err := patch.Validate(); err != nil {
		return task.Patch{}, service.FromValidation(err)
	}
	return patch, nil
}

// поля проверяются в фиксированном порядке, чтобы ошибка была детерминированной
func rejectNull(nulls map[string]bool) error {
	for _, field := range []string{"title", "description", "completed", "priority"} {
		if nulls[field] {
			return service.NewValidationError(field, "must not be null")
		}
	}
	return nil
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
