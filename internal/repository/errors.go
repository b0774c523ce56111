package repository

import "errors"

var ErrNotFound = errors.New("запись не найдена")

var ErrAlreadyExists = errors.New("запись с таким id уже существует")
