package sim

import (
	"log"
	"sync"
	"time"
)

// Loop calls tick at a fixed wall-clock rate until stopped.
type Loop struct {
	tick     func()
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(tickRate int, tick func()) *Loop {
	return &Loop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Sim loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Sim loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
