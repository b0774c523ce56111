package handlers

import (
	"net/http"
	"time"
	"todoList/internal/handlers/dto"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	ServiceName    = "todo-api"
	ServiceVersion = "1.0.0"
)

type TaskHandler struct {
	TaskService Service
}

func NewTaskHandler(taskService Service) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
	}
}

// Register вешает маршруты задач на роутер
func (s *TaskHandler) Register(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.ListTasks)  // GET /tasks
		r.Post("/", s.PostTask) // POST /tasks

		r.Get("/stats/summary", s.GetStats) // GET /tasks/stats/summary

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", s.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", s.DeleteTaskByID) // DELETE /tasks/{id}
		})
	})
}

func (s *TaskHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.RootResponse{
		Message:       "Welcome to To-Do List API",
		Version:       ServiceVersion,
		Documentation: "/docs",
	})
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := s.TaskService.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Сервис недоступен", err)
		writeJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Service: ServiceName})
		return
	}
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Service: ServiceName})
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := decodeAndValidate(r, &request); err != nil {
		handleError(w, r, err, "create_task")
		return
	}

	input, err := request.ToInput()
	if err != nil {
		handleError(w, r, err, "create_task")
		return
	}

	created, err := s.TaskService.CreateTask(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	writeJSON(w, http.StatusCreated, dto.FromTask(created))
}

func (s *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query()
	filter := task.NewFilter()

	if raw := query.Get("completed"); raw != "" {
		completed, err := parseBoolParam(raw)
		if err != nil {
			handleError(w, r, service.NewValidationError("completed", err.Error()), "list_tasks")
			return
		}
		filter.Completed = &completed
	}

	if raw := query.Get("priority"); raw != "" {
		priority := task.Priority(raw)
		filter.Priority = &priority
	}

	var err error
	if filter.Skip, err = parseIntParam(query.Get("skip"), 0); err != nil {
		handleError(w, r, service.NewValidationError("skip", err.Error()), "list_tasks")
		return
	}
	if filter.Limit, err = parseIntParam(query.Get("limit"), task.DefaultLimit); err != nil {
		handleError(w, r, service.NewValidationError("limit", err.Error()), "list_tasks")
		return
	}

	tasks, err := s.TaskService.ListTasks(r.Context(), filter)
	if err != nil {
		handleError(w, r, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	writeJSON(w, http.StatusOK, dto.FromTaskList(tasks))
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := chi.URLParam(r, "id")

	found, err := s.TaskService.GetTask(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "get_task")
		return
	}

	logger.Info("HTTP_OUT: Задача получена",
		zap.String("task_id", found.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	writeJSON(w, http.StatusOK, dto.FromTask(found))
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	id := chi.URLParam(r, "id")

	var request dto.UpdateTaskRequest
	if err := decodeAndValidate(r, &request); err != nil {
		handleError(w, r, err, "update_task")
		return
	}

	patch, err := request.ToPatch()
	if err != nil {
		handleError(w, r, err, "update_task")
		return
	}

	updated, err := s.TaskService.UpdateTask(r.Context(), id, patch)
	if err != nil {
		handleError(w, r, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("task_id", updated.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	writeJSON(w, http.StatusOK, dto.FromTask(updated))
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := chi.URLParam(r, "id")

	if err := s.TaskService.DeleteTask(r.Context(), id); err != nil {
		handleError(w, r, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.String("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	stats, err := s.TaskService.GetStats(r.Context())
	if err != nil {
		handleError(w, r, err, "get_stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
