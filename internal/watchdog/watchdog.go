// Package watchdog tracks component liveness and periodically writes a
// resource snapshot to the operational log.
package watchdog

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"go-modwatch/internal/logging"
)

type Watchdog struct {
	mu         sync.Mutex
	components map[string]*componentHealth
	interval   time.Duration
	stop       chan struct{}
	done       chan struct{}
}

type componentHealth struct {
	lastBeat  time.Time
	threshold time.Duration
}

func New(interval time.Duration) *Watchdog {
	return &Watchdog{
		components: make(map[string]*componentHealth),
		interval:   interval,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Register adds a component; it counts as healthy until threshold elapses
// without a heartbeat.
func (w *Watchdog) Register(name string, threshold time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.components[name] = &componentHealth{
		lastBeat:  time.Now(),
		threshold: threshold,
	}
}

func (w *Watchdog) Heartbeat(name string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.components[name]; ok {
		c.lastBeat = time.Now()
	}
}

func (w *Watchdog) Start() {
	go w.run()
}

func (w *Watchdog) Stop() {
	close(w.stop)
	<-w.done
}

func (w *Watchdog) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			for _, name := range w.stale(time.Now()) {
				logging.Warn("[WATCHDOG] Component %s has missed its heartbeat window", name)
			}
			w.logSnapshot()
		}
	}
}

func (w *Watchdog) stale(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var names []string
	for name, c := range w.components {
		if now.Sub(c.lastBeat) > c.threshold {
			names = append(names, name)
		}
	}
	return names
}

func (w *Watchdog) logSnapshot() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		logging.Debug("[WATCHDOG] Memory snapshot unavailable: %v", err)
		return
	}

	usage, err := cpu.Percent(0, false)
	cpuPct := 0.0
	if err == nil && len(usage) > 0 {
		cpuPct = usage[0]
	}

	logging.Info("[WATCHDOG] mem %.1f%% (%d MiB used), cpu %.1f%%",
		vm.UsedPercent, vm.Used/1024/1024, cpuPct)
}
