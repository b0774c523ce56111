package dto

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля JSON: нет в теле, явный null, значение
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON вызывается только для ключей, присутствующих в теле, в том числе для null
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr возвращает nil, если поле не передано или равно null
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}
