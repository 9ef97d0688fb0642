package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier surfaces a blocking, user-facing message.
type Notifier interface {
	Alert(message string)
}

// Reloader discards local view state and refetches it from the server.
type Reloader interface {
	Reload()
}

// ReloadFunc adapts a function to Reloader.
type ReloadFunc func()

func (f ReloadFunc) Reload() { f() }

var alertStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("205")).
	Padding(0, 1)

// Console prints alerts to a writer, one boxed message per alert.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Alert(message string) {
	fmt.Fprintln(c.w, alertStyle.Render(message))
}

// Recorder collects alerts and reload requests so they can be replayed on
// the TUI update loop, or inspected in tests.
type Recorder struct {
	mu      sync.Mutex
	alerts  []string
	reloads int
}

func (r *Recorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

func (r *Recorder) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads++
}

// Alerts returns a copy of the recorded alerts in order.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

// Reloads returns how many times Reload was called.
func (r *Recorder) Reloads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}
