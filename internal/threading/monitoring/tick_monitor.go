package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickMonitor tracks simulation tick timing and movement outcomes. Counters are
// atomic so movers stepped on different workers can report concurrently.
type TickMonitor struct {
	tickCount atomic.Uint64
	tickTime  atomic.Uint64 // nanoseconds, last tick

	movesCommitted atomic.Uint64
	movesRejected  atomic.Uint64
	turnsAccepted  atomic.Uint64
	turnsRejected  atomic.Uint64

	mutex       sync.RWMutex
	avgTickTime float64 // nanoseconds, exponential moving average
	startTime   time.Time
}

// TickMetrics is a snapshot of the monitor
type TickMetrics struct {
	Ticks          uint64
	LastTick       time.Duration
	AvgTick        time.Duration
	MovesCommitted uint64
	MovesRejected  uint64
	TurnsAccepted  uint64
	TurnsRejected  uint64
	Uptime         time.Duration
}

// NewTickMonitor creates a new tick monitor
func NewTickMonitor() *TickMonitor {
	return &TickMonitor{startTime: time.Now()}
}

// TickTimer helps measure tick timing
type TickTimer struct {
	monitor   *TickMonitor
	startTime time.Time
}

// StartTick begins tick timing
func (tm *TickMonitor) StartTick() *TickTimer {
	return &TickTimer{
		monitor:   tm,
		startTime: time.Now(),
	}
}

// EndTick completes tick timing
func (tt *TickTimer) EndTick() {
	elapsed := time.Since(tt.startTime)
	tt.monitor.record(elapsed)
}

func (tm *TickMonitor) record(elapsed time.Duration) {
	tm.tickTime.Store(uint64(elapsed.Nanoseconds()))
	count := tm.tickCount.Add(1)

	tm.mutex.Lock()
	if count == 1 {
		tm.avgTickTime = float64(elapsed.Nanoseconds())
	} else {
		tm.avgTickTime = tm.avgTickTime*0.9 + float64(elapsed.Nanoseconds())*0.1
	}
	tm.mutex.Unlock()
}

// RecordMove counts a per-tick move outcome
func (tm *TickMonitor) RecordMove(committed bool) {
	if committed {
		tm.movesCommitted.Add(1)
	} else {
		tm.movesRejected.Add(1)
	}
}

// RecordTurn counts a direction change outcome
func (tm *TickMonitor) RecordTurn(accepted bool) {
	if accepted {
		tm.turnsAccepted.Add(1)
	} else {
		tm.turnsRejected.Add(1)
	}
}

// GetCurrentMetrics returns a snapshot of all counters
func (tm *TickMonitor) GetCurrentMetrics() TickMetrics {
	tm.mutex.RLock()
	avg := tm.avgTickTime
	tm.mutex.RUnlock()

	return TickMetrics{
		Ticks:          tm.tickCount.Load(),
		LastTick:       time.Duration(tm.tickTime.Load()),
		AvgTick:        time.Duration(avg),
		MovesCommitted: tm.movesCommitted.Load(),
		MovesRejected:  tm.movesRejected.Load(),
		TurnsAccepted:  tm.turnsAccepted.Load(),
		TurnsRejected:  tm.turnsRejected.Load(),
		Uptime:         time.Since(tm.startTime),
	}
}

// Reset clears all counters
func (tm *TickMonitor) Reset() {
	tm.tickCount.Store(0)
	tm.tickTime.Store(0)
	tm.movesCommitted.Store(0)
	tm.movesRejected.Store(0)
	tm.turnsAccepted.Store(0)
	tm.turnsRejected.Store(0)

	tm.mutex.Lock()
	tm.avgTickTime = 0
	tm.startTime = time.Now()
	tm.mutex.Unlock()
}
