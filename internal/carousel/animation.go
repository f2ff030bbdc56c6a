package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	frameRate     = 60
	frameInterval = time.Second / frameRate

	// A critically damped spring at this frequency covers nearly all of its
	// distance within the default snap duration; the snap timer pins the
	// exact target when it fires.
	springFrequency = 18.0
	springDamping   = 1.0
)

// animation eases the offset toward a snap target one frame at a time.
type animation struct {
	spring harmonica.Spring
	active bool
	pos    float64
	vel    float64
	target int
}

func newAnimation() animation {
	return animation{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
}

func (a *animation) start(from, to int) {
	a.active = true
	a.pos = float64(from)
	a.vel = 0
	a.target = to
}

func (a *animation) stop() {
	a.active = false
	a.vel = 0
}

// step advances one frame and returns the rounded offset.
func (a *animation) step() int {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, float64(a.target))
	return int(math.Round(a.pos))
}
