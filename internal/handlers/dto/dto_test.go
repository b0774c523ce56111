package dto_test

import (
	"encoding/json"
	"testing"
	"todoList/internal/handlers/dto"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptional тестирует различие между отсутствующим полем, null и значением
func TestOptional(t *testing.T) {
	var body struct {
		Missing dto.Optional[string] `json:"missing"`
		Null    dto.Optional[string] `json:"null"`
		Value   dto.Optional[string] `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"null": null, "value": "x"}`), &body))

	assert.False(t, body.Missing.Set)
	assert.Nil(t, body.Missing.Ptr())

	assert.True(t, body.Null.Set)
	assert.True(t, body.Null.Null)
	assert.Nil(t, body.Null.Ptr())

	assert.True(t, body.Value.Set)
	assert.False(t, body.Value.Null)
	require.NotNil(t, body.Value.Ptr())
	assert.Equal(t, "x", *body.Value.Ptr())
}

func TestOptional_TypeError(t *testing.T) {
	var body struct {
		Completed dto.Optional[bool] `json:"completed"`
	}
	err := json.Unmarshal([]byte(`{"completed": "maybe"}`), &body)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "completed", typeErr.Field)
}

// TestUpdateTaskRequest_ToPatch тестирует перевод тела PUT в task.Patch
func TestUpdateTaskRequest_ToPatch(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expected      task.Patch
		expectedField string
	}{
		{name: "empty", body: `{}`, expected: task.Patch{}},
		{name: "null description clears", body: `{"description": null}`, expected: task.Patch{ClearDescription: true}},
		{name: "null title", body: `{"title": null}`, expectedField: "title"},
		{name: "null completed", body: `{"completed": null}`, expectedField: "completed"},
		{name: "null priority", body: `{"priority": null}`, expectedField: "priority"},
		{name: "empty title", body: `{"title": ""}`, expectedField: "title"},
		{name: "unknown priority", body: `{"priority": "urgent"}`, expectedField: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.UpdateTaskRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			patch, err := req.ToPatch()
			if tt.expectedField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, patch)
				return
			}

			var businessErr *service.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, service.CodeValidation, businessErr.Code)
			assert.Equal(t, tt.expectedField, businessErr.Details["field"])
		})
	}
}

// TestCreateTaskRequest_ToInput тестирует null и недопустимые значения при создании
func TestCreateTaskRequest_ToInput(t *testing.T) {
	t.Run("null description allowed", func(t *testing.T) {
		var req dto.CreateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title": "t", "description": null, "completed": true}`), &req))

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Nil(t, in.Description)
		require.NotNil(t, in.Completed)
		assert.True(t, *in.Completed)
		assert.Nil(t, in.Priority)
	})

	for body, field := range map[string]string{
		`{"title": "t", "completed": null}`:  "completed",
		`{"title": "t", "priority": null}`:   "priority",
		`{"title": "t", "priority": "HIGH"}`: "priority",
	} {
		t.Run(body, func(t *testing.T) {
			var req dto.CreateTaskRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))

			_, err := req.ToInput()
			var businessErr *service.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, field, businessErr.Details["field"])
		})
	}
}
