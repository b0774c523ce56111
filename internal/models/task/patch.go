package task

import "time"

// Patch описывает частичное обновление: nil означает, что поле не передано.
// ClearDescription сбрасывает описание в null и важнее Description.
type Patch struct {
	Title            *string   `validate:"omitnil,min=1,max=200"`
	Description      *string   `validate:"omitnil,max=1000"`
	ClearDescription bool      `validate:"-"`
	Completed        *bool     `validate:"-"`
	Priority         *Priority `validate:"omitnil,oneof=low medium high"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && !p.ClearDescription && p.Completed == nil && p.Priority == nil
}

// Apply перезаписывает только переданные поля, updated_at обновляется всегда
func (p Patch) Apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	switch {
	case p.ClearDescription:
		t.Description = nil
	case p.Description != nil:
		d := *p.Description
		t.Description = &d
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	t.UpdatedAt = now
}
