package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered to a Bubble Tea model when a Program schedule is due.
// Route it back to the Program that produced it with Handle.
type FireMsg struct {
	owner *Program
	id    uint64
}

// Program schedules recurring callbacks through tea.Tick. Schedule IDs are
// never reused, so a FireMsg for a stopped schedule finds nothing to run and
// is dropped without re-arming.
//
// Program must only be used from the model's Update.
type Program struct {
	nextID  uint64
	entries map[uint64]programEntry
	pending []tea.Cmd
}

type programEntry struct {
	every time.Duration
	fn    func()
}

// NewProgram creates an empty Program.
func NewProgram() *Program {
	return &Program{entries: make(map[uint64]programEntry)}
}

// Every registers fn and queues the first tick. The queued command is only
// handed to Bubble Tea by the next Flush or Handle.
func (p *Program) Every(d time.Duration, fn func()) func() {
	id := p.nextID
	p.nextID++
	p.entries[id] = programEntry{every: d, fn: fn}
	p.pending = append(p.pending, p.arm(id, d))
	return func() { delete(p.entries, id) }
}

func (p *Program) arm(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{owner: p, id: id}
	})
}

// Flush returns the ticks queued since the last Flush.
func (p *Program) Flush() tea.Cmd {
	cmds := p.pending
	p.pending = nil
	return tea.Batch(cmds...)
}

// Owns reports whether msg was produced by p.
func (p *Program) Owns(msg FireMsg) bool { return msg.owner == p }

// Handle runs the callback for msg and re-arms its schedule if it is still
// live afterwards. Messages for stopped schedules or other Programs are
// ignored.
func (p *Program) Handle(msg FireMsg) tea.Cmd {
	if !p.Owns(msg) {
		return nil
	}
	e, ok := p.entries[msg.id]
	if !ok {
		return nil
	}
	e.fn()

	var next tea.Cmd
	if _, ok := p.entries[msg.id]; ok {
		next = p.arm(msg.id, e.every)
	}
	return tea.Batch(p.Flush(), next)
}

// Pending returns the number of live schedules.
func (p *Program) Pending() int { return len(p.entries) }
