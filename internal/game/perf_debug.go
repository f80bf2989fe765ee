package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const perfLogInterval = 3 * time.Second

func (gl *GameLoop) maybeLogPerf() {
	if !gl.game.perfDebugEnabled {
		return
	}

	now := time.Now()
	if !gl.game.perfLastLog.IsZero() && now.Sub(gl.game.perfLastLog) < perfLogInterval {
		return
	}
	gl.game.perfLastLog = now

	m := gl.game.world.Metrics()
	log.Printf("[Perf] tps=%.1f ticks=%d last_tick=%v avg_tick=%v moves=%d/%d rejected turns=%d",
		ebiten.ActualTPS(), m.Ticks, m.LastTick, m.AvgTick,
		m.MovesCommitted, m.MovesCommitted+m.MovesRejected, m.TurnsRejected)
}
