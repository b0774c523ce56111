package task

import "math"

type PriorityBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type Stats struct {
	TotalTasks        int               `json:"total_tasks"`
	CompletedTasks    int               `json:"completed_tasks"`
	PendingTasks      int               `json:"pending_tasks"`
	CompletionRate    float64           `json:"completion_rate"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
}

func ComputeStats(tasks []*Task) Stats {
	var s Stats
	s.TotalTasks = len(tasks)

	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
		}
		switch t.Priority {
		case PriorityLow:
			s.PriorityBreakdown.Low++
		case PriorityMedium:
			s.PriorityBreakdown.Medium++
		case PriorityHigh:
			s.PriorityBreakdown.High++
		}
	}

	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	if s.TotalTasks > 0 {
		rate := float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
		s.CompletionRate = math.Round(rate*100) / 100
	}
	return s
}
