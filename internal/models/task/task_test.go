package task_test

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"todoList/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var base = time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)

func newTask(i int, completed bool, priority task.Priority) *task.Task {
	created := base.Add(time.Duration(i) * time.Minute)
	return &task.Task{
		ID:        fmt.Sprintf("id-%d", i),
		Title:     fmt.Sprintf("Task %d", i),
		Completed: completed,
		Priority:  priority,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range task.Priorities {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, task.Priority("urgent").Valid())
	assert.False(t, task.Priority("").Valid())
	assert.False(t, task.Priority("HIGH").Valid())
}

func TestTask_Clone(t *testing.T) {
	orig := newTask(1, false, task.PriorityHigh)
	orig.Description = ptr("desc")

	c := orig.Clone()
	require.Equal(t, orig, c)

	*c.Description = "changed"
	c.Title = "changed"
	assert.Equal(t, "desc", *orig.Description)
	assert.Equal(t, "Task 1", orig.Title)
}

func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*task.Task)
		expectError bool
	}{
		{name: "valid", modify: func(*task.Task) {}},
		{name: "empty title", modify: func(tk *task.Task) { tk.Title = "" }, expectError: true},
		{name: "title at limit", modify: func(tk *task.Task) { tk.Title = strings.Repeat("a", task.TitleMaxLen) }},
		{name: "title over limit", modify: func(tk *task.Task) { tk.Title = strings.Repeat("a", task.TitleMaxLen+1) }, expectError: true},
		{name: "multibyte title at limit", modify: func(tk *task.Task) { tk.Title = strings.Repeat("ж", task.TitleMaxLen) }},
		{name: "description over limit", modify: func(tk *task.Task) { tk.Description = ptr(strings.Repeat("a", task.DescriptionMaxLen+1)) }, expectError: true},
		{name: "unknown priority", modify: func(tk *task.Task) { tk.Priority = "urgent" }, expectError: true},
		{name: "missing id", modify: func(tk *task.Task) { tk.ID = "" }, expectError: true},
		{name: "updated before created", modify: func(tk *task.Task) { tk.UpdatedAt = tk.CreatedAt.Add(-time.Second) }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTask(1, false, task.PriorityMedium)
			tt.modify(tk)
			err := tk.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	later := base.Add(time.Hour)

	t.Run("only completed", func(t *testing.T) {
		tk := newTask(1, false, task.PriorityHigh)
		tk.Description = ptr("keep me")

		task.Patch{Completed: ptr(true)}.Apply(tk, later)

		assert.True(t, tk.Completed)
		assert.Equal(t, "Task 1", tk.Title)
		assert.Equal(t, "keep me", *tk.Description)
		assert.Equal(t, task.PriorityHigh, tk.Priority)
		assert.Equal(t, later, tk.UpdatedAt)
		assert.Equal(t, base.Add(time.Minute), tk.CreatedAt)
	})

	t.Run("all fields", func(t *testing.T) {
		tk := newTask(1, false, task.PriorityHigh)
		task.Patch{
			Title:       ptr("new title"),
			Description: ptr("new description"),
			Completed:   ptr(true),
			Priority:    ptr(task.PriorityLow),
		}.Apply(tk, later)

		assert.Equal(t, "new title", tk.Title)
		assert.Equal(t, "new description", *tk.Description)
		assert.True(t, tk.Completed)
		assert.Equal(t, task.PriorityLow, tk.Priority)
	})

	t.Run("clear description", func(t *testing.T) {
		tk := newTask(1, false, task.PriorityHigh)
		tk.Description = ptr("old")

		p := task.Patch{ClearDescription: true, Description: ptr("ignored")}
		assert.False(t, p.Empty())
		p.Apply(tk, later)

		assert.Nil(t, tk.Description)
		assert.Equal(t, "Task 1", tk.Title)
		assert.Equal(t, later, tk.UpdatedAt)
	})

	t.Run("empty patch still bumps updated_at", func(t *testing.T) {
		tk := newTask(1, false, task.PriorityHigh)
		before := *tk

		p := task.Patch{}
		assert.True(t, p.Empty())
		p.Apply(tk, later)

		assert.Equal(t, later, tk.UpdatedAt)
		tk.UpdatedAt = before.UpdatedAt
		assert.Equal(t, before, *tk)
	})
}

func TestPatch_Validate(t *testing.T) {
	assert.NoError(t, task.Patch{}.Validate())
	assert.NoError(t, task.Patch{Title: ptr("ok"), Priority: ptr(task.PriorityLow), Description: ptr("")}.Validate())
	assert.Error(t, task.Patch{Title: ptr("")}.Validate())
	assert.Error(t, task.Patch{Title: ptr(strings.Repeat("a", task.TitleMaxLen+1))}.Validate())
	assert.Error(t, task.Patch{Description: ptr(strings.Repeat("a", task.DescriptionMaxLen+1))}.Validate())
	assert.Error(t, task.Patch{Priority: ptr(task.Priority("urgent"))}.Validate())
}

func TestFilter_Apply(t *testing.T) {
	// задачи в порядке вставки, created_at растёт
	var tasks []*task.Task
	priorities := []task.Priority{task.PriorityLow, task.PriorityMedium, task.PriorityHigh}
	for i := 0; i < 10; i++ {
		tasks = append(tasks, newTask(i, i%2 == 0, priorities[i%3]))
	}

	ids := func(ts []*task.Task) []string {
		res := make([]string, len(ts))
		for i, tk := range ts {
			res[i] = tk.ID
		}
		return res
	}

	t.Run("sorted newest first", func(t *testing.T) {
		got := task.NewFilter().Apply(tasks)
		require.Len(t, got, 10)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt))
		}
	})

	t.Run("skip 5 limit 3 returns ranks 6 to 8", func(t *testing.T) {
		f := task.NewFilter()
		f.Skip, f.Limit = 5, 3
		assert.Equal(t, []string{"id-4", "id-3", "id-2"}, ids(f.Apply(tasks)))
	})

	t.Run("completed filter", func(t *testing.T) {
		f := task.NewFilter()
		f.Completed = ptr(true)
		got := f.Apply(tasks)
		require.Len(t, got, 5)
		for _, tk := range got {
			assert.True(t, tk.Completed)
		}
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		f := task.NewFilter()
		f.Completed = ptr(true)
		f.Priority = ptr(task.PriorityLow)
		// i чётное и i%3 == 0: 0, 6
		assert.Equal(t, []string{"id-6", "id-0"}, ids(f.Apply(tasks)))
	})

	t.Run("unknown priority matches nothing", func(t *testing.T) {
		f := task.NewFilter()
		f.Priority = ptr(task.Priority("urgent"))
		assert.Empty(t, f.Apply(tasks))
	})

	t.Run("out of range pagination", func(t *testing.T) {
		cases := []struct {
			skip, limit, want int
		}{
			{skip: 100, limit: 10, want: 0},
			{skip: 0, limit: 0, want: 0},
			{skip: 8, limit: 10, want: 2},
			{skip: -5, limit: 3, want: 3},
			{skip: 0, limit: -1, want: 0},
		}
		for _, c := range cases {
			f := task.NewFilter()
			f.Skip, f.Limit = c.skip, c.limit
			got := f.Apply(tasks)
			assert.NotNil(t, got)
			assert.Len(t, got, c.want, "skip=%d limit=%d", c.skip, c.limit)
		}
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		same := []*task.Task{newTask(1, false, task.PriorityLow), newTask(1, false, task.PriorityLow)}
		same[0].ID, same[1].ID = "first", "second"
		assert.Equal(t, []string{"first", "second"}, ids(task.NewFilter().Apply(same)))
	})

	t.Run("empty input", func(t *testing.T) {
		got := task.NewFilter().Apply(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestComputeStats(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		s := task.ComputeStats(nil)
		assert.Equal(t, 0, s.TotalTasks)
		assert.Equal(t, 0.0, s.CompletionRate)
	})

	t.Run("two tasks", func(t *testing.T) {
		s := task.ComputeStats([]*task.Task{
			newTask(1, false, task.PriorityHigh),
			newTask(2, true, task.PriorityLow),
		})
		assert.Equal(t, task.Stats{
			TotalTasks:        2,
			CompletedTasks:    1,
			PendingTasks:      1,
			CompletionRate:    50.0,
			PriorityBreakdown: task.PriorityBreakdown{Low: 1, Medium: 0, High: 1},
		}, s)
	})

	t.Run("rate rounded to two decimals", func(t *testing.T) {
		s := task.ComputeStats([]*task.Task{
			newTask(1, true, task.PriorityMedium),
			newTask(2, false, task.PriorityMedium),
			newTask(3, false, task.PriorityMedium),
		})
		assert.Equal(t, 33.33, s.CompletionRate)
		assert.Equal(t, 3, s.PriorityBreakdown.Medium)
	})
}
