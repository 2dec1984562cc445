// Package motion decides how slide transitions are animated.
package motion

import (
	"os"
	"runtime"
	"time"
)

// DefaultDuration is the slide-in duration when motion is not reduced
const DefaultDuration = 600 * time.Millisecond

// minCPUs is the core count below which animations are reduced
const minCPUs = 4

// reducedMotionEnv lists environment variables that request reduced motion
var reducedMotionEnv = []string{"REDUCED_MOTION", "NO_MOTION"}

// Env abstracts the host facts used to pick reduced motion
type Env struct {
	NumCPU func() int
	Getenv func(string) string
}

// HostEnv returns the environment of the running process
func HostEnv() Env {
	return Env{NumCPU: runtime.NumCPU, Getenv: os.Getenv}
}

// PrefersReducedMotion reports whether animations should be reduced,
// either because the user asked for it or the host has few cores
func (e Env) PrefersReducedMotion() bool {
	if e.NumCPU != nil && e.NumCPU() < minCPUs {
		return true
	}
	if e.Getenv != nil {
		for _, name := range reducedMotionEnv {
			if e.Getenv(name) != "" {
				return true
			}
		}
	}
	return false
}

// Duration returns the transition duration to use
func Duration(configured time.Duration, reduced bool) time.Duration {
	if reduced || configured <= 0 {
		return 0
	}
	return configured
}

// Transition is a restartable slide-in animation. Restarting while it is
// running starts over rather than queueing.
type Transition struct {
	duration time.Duration
	start    time.Time
}

// NewTransition creates an idle transition. A zero duration disables animation.
func NewTransition(duration time.Duration) *Transition {
	return &Transition{duration: duration}
}

// Restart begins the animation again from now
func (t *Transition) Restart(now time.Time) {
	if t.duration <= 0 {
		return
	}
	t.start = now
}

// Running reports whether the animation is still in progress at now
func (t *Transition) Running(now time.Time) bool {
	if t.duration <= 0 || t.start.IsZero() {
		return false
	}
	return now.Sub(t.start) < t.duration
}

// Progress returns how far the animation is at now, from 0 to 1
func (t *Transition) Progress(now time.Time) float64 {
	if !t.Running(now) {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p < 0 {
		return 0
	}
	return p
}

// Offset returns the horizontal shift, in cells, for content sliding in
// from maxShift to 0 with an ease-out curve
func (t *Transition) Offset(now time.Time, maxShift int) int {
	remaining := 1 - t.Progress(now)
	return int(float64(maxShift) * remaining * remaining)
}
