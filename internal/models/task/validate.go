package task

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет инварианты записи перед сохранением
func (t *Task) Validate() error {
	return validate.Struct(t)
}

func (p Patch) Validate() error {
	return validate.Struct(p)
}
