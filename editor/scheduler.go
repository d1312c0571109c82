package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asifhabib/mentions/mention"
)

// cooldownMsg re-enters the Update loop when the listener's cooldown timer
// expires. Seq identifies the scheduling generation so stale ticks from a
// replaced timer are ignored.
type cooldownMsg struct {
	id  int64
	seq int
}

// scheduler adapts the listener's one-shot timer to Bubble Tea: AfterFunc
// records the callback and queues a tea.Tick command, and the model runs
// the callback when the matching cooldownMsg arrives. Everything stays on
// the Update goroutine.
type scheduler struct {
	id  int64
	seq int
	fn  func()
	cmd tea.Cmd
}

func (s *scheduler) AfterFunc(d time.Duration, fn func()) mention.Timer {
	s.seq++
	seq := s.seq
	s.fn = fn
	s.cmd = tea.Tick(d, func(time.Time) tea.Msg {
		return cooldownMsg{id: s.id, seq: seq}
	})
	return &schedulerTimer{sched: s, seq: seq}
}

// takeCmd returns the queued tick command once, for the model to batch.
func (s *scheduler) takeCmd() tea.Cmd {
	cmd := s.cmd
	s.cmd = nil
	return cmd
}

// deliver runs the pending callback if msg matches the live generation.
func (s *scheduler) deliver(msg cooldownMsg) {
	if msg.id != s.id || msg.seq != s.seq || s.fn == nil {
		return
	}
	fn := s.fn
	s.fn = nil
	fn()
}

type schedulerTimer struct {
	sched *scheduler
	seq   int
}

func (t *schedulerTimer) Stop() bool {
	if t.sched.seq != t.seq || t.sched.fn == nil {
		return false
	}
	t.sched.fn = nil
	return true
}
