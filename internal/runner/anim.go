package runner

// animator cycles a sprite sheet column on a fixed interval, independent of motion.
type animator struct {
	frame    int
	maxFrame int
	timer    float64
	interval float64 // ms per frame
}

func newAnimator(fps float64, maxFrame int) animator {
	return animator{maxFrame: maxFrame, interval: 1000 / fps}
}

// tick advances the timer by dt and steps the frame once it overruns the interval.
// The frame index stays within [0, maxFrame].
func (a *animator) tick(dt float64) {
	if a.timer > a.interval {
		if a.frame >= a.maxFrame {
			a.frame = 0
		} else {
			a.frame++
		}
		a.timer = 0
	} else {
		a.timer += dt
	}
}

// setMax switches to a pose with a different frame count.
func (a *animator) setMax(maxFrame int) {
	a.maxFrame = maxFrame
	if a.frame > maxFrame {
		a.frame = 0
	}
}
