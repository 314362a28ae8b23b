package diagram

import (
	"fmt"
	"io"
	"sync"
)

// StateDiagrammer collects distinct state transitions and renders them as a
// mermaid state diagram.
type StateDiagrammer struct {
	title    string
	lines    []string
	linesMap map[string]bool
	mutex    sync.RWMutex
	ended    bool
}

func NewStateDiagrammer(title string) *StateDiagrammer {
	d := &StateDiagrammer{
		title:    title,
		lines:    make([]string, 0),
		linesMap: make(map[string]bool),
		mutex:    sync.RWMutex{},
	}

	d.begin()
	return d
}

func (d *StateDiagrammer) addLine(line string) {
	d.lines = append(d.lines, line)
}

func (d *StateDiagrammer) begin() {
	d.addLine("```mermaid")
	d.addLine("---")
	d.addLine(fmt.Sprintf("title: %s", d.title))
	d.addLine("---")
	d.addLine("stateDiagram-v2")
}

// Transition records a move between states. Repeated transitions are drawn once.
// An empty fromState is drawn as the start marker.
func (d *StateDiagrammer) Transition(event string, fromState string, toState string) {
	if fromState == "" {
		fromState = "[*]"
	}
	line := fmt.Sprintf("  %s --> %s: %s", fromState, toState, event)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.ended || d.linesMap[line] {
		return
	}
	d.linesMap[line] = true
	d.addLine(line)
}

// End closes the diagram; later transitions are ignored.
func (d *StateDiagrammer) End() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.ended {
		d.ended = true
		d.addLine("```")
	}
}

// Write renders the diagram followed by a blank line.
func (d *StateDiagrammer) Write(w io.Writer) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	for _, line := range d.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return nil
}
