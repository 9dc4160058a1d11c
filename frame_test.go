package tether

import "testing"

func TestFrames(t *testing.T) {
	t.Run("ScheduleRunsOnce", func(t *testing.T) {
		f := NewFrames()
		count := 0
		f.Schedule(func() { count++ })

		f.Step()
		f.Step()
		if count != 1 {
			t.Errorf("expected 1 run, got %d", count)
		}
	})

	t.Run("RepeatRunsEveryFrame", func(t *testing.T) {
		f := NewFrames()
		count := 0
		task := f.Repeat(func() { count++ })

		f.Step()
		f.Step()
		f.Step()
		if count != 3 {
			t.Errorf("expected 3 runs, got %d", count)
		}

		task.Cancel()
		f.Step()
		if count != 3 {
			t.Errorf("expected no runs after cancel, got %d", count)
		}
	})

	t.Run("CancelBeforeFirstRun", func(t *testing.T) {
		f := NewFrames()
		ran := false
		task := f.Schedule(func() { ran = true })
		task.Cancel()

		f.Step()
		if ran {
			t.Error("cancelled task should never run")
		}
	})

	t.Run("CancelIsIdempotent", func(t *testing.T) {
		f := NewFrames()
		task := f.Repeat(func() {})
		task.Cancel()
		task.Cancel()
		if !task.Cancelled() {
			t.Error("expected task to report cancelled")
		}
	})

	t.Run("CancelFromInsideCallback", func(t *testing.T) {
		f := NewFrames()
		count := 0
		var task *FrameTask
		task = f.Repeat(func() {
			count++
			if count == 2 {
				task.Cancel()
			}
		})

		for i := 0; i < 5; i++ {
			f.Step()
		}
		if count != 2 {
			t.Errorf("expected 2 runs, got %d", count)
		}
	})

	t.Run("WorkScheduledDuringStepRunsNextFrame", func(t *testing.T) {
		f := NewFrames()
		var order []string
		f.Schedule(func() {
			order = append(order, "outer")
			f.Schedule(func() { order = append(order, "inner") })
		})

		f.Step()
		if len(order) != 1 || order[0] != "outer" {
			t.Fatalf("expected only outer after first step, got %v", order)
		}
		f.Step()
		if len(order) != 2 || order[1] != "inner" {
			t.Errorf("expected inner on second step, got %v", order)
		}
	})

	t.Run("PostRunsBeforeTasks", func(t *testing.T) {
		f := NewFrames()
		var order []string
		f.Schedule(func() { order = append(order, "task") })
		f.Post(func() { order = append(order, "posted") })

		f.Step()
		if len(order) != 2 || order[0] != "posted" || order[1] != "task" {
			t.Errorf("expected posted before task, got %v", order)
		}
	})

	t.Run("RegistrationOrderPreserved", func(t *testing.T) {
		f := NewFrames()
		var order []int
		for i := 0; i < 5; i++ {
			i := i
			f.Schedule(func() { order = append(order, i) })
		}

		f.Step()
		for i, got := range order {
			if got != i {
				t.Errorf("position %d: expected %d, got %d", i, i, got)
			}
		}
	})

	t.Run("StopIsIdempotent", func(t *testing.T) {
		f := NewFrames()
		f.Stop()
		f.Stop()
	})
}
