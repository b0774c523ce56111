package service

import (
	"time"

	"github.com/google/uuid"
)

type Option func(*TaskService)

// WithClock подменяет источник времени, нужен тестам с детерминированным порядком
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(s *TaskService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func defaultNow() time.Time {
	return time.Now().UTC()
}

func defaultID() string {
	return uuid.NewString()
}
