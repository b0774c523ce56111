package task

import "sort"

const DefaultLimit = 100

// Filter задаёт выборку для списка задач
type Filter struct {
	Completed *bool
	Priority  *Priority
	Skip      int
	Limit     int
}

func NewFilter() Filter {
	return Filter{Limit: DefaultLimit}
}

func (f Filter) Match(t *Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// Apply фильтрует, сортирует по created_at (новые первыми) и возвращает окно [skip, skip+limit).
// tasks должны идти в порядке вставки: при равных created_at этот порядок сохраняется.
func (f Filter) Apply(tasks []*Task) []*Task {
	res := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			res = append(res, t)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	skip, limit := f.Skip, f.Limit
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(res) {
		return []*Task{}
	}
	end := len(res)
	if limit < end-skip {
		end = skip + limit
	}
	return res[skip:end]
}
