package task

import (
	"time"
)

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
)

type Task struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description *string   `json:"description" validate:"omitnil,max=1000"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority" validate:"oneof=low medium high"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" validate:"gtefield=CreatedAt"`
}

type Priority string

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

const DefaultPriority = PriorityMedium

// Priorities перечисляет допустимые значения в порядке возрастания
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Clone возвращает копию задачи, не разделяющую состояние с хранилищем
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}
