package animate

import (
	"context"
	"errors"
	"math"

	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gomohr/internal/plane"
)

// WrapAngle maps any angle in degrees into (-180, 180]
func WrapAngle(deg float64) float64 {
	n := math.Mod(deg+180, 360) - 180
	if n <= -180 {
		n += 360
	}
	return n
}

// Frame is one step of a playback
type Frame struct {
	Index    int
	AngleDeg float64 // Wrapped display angle
	Rotated  plane.TransformedStress
}

// Player rotates a plane stress element at a fixed frame rate
type Player struct {
	Stress   plane.StressState
	StartDeg float64
	StepDeg  float64 // Rotation per frame (degrees)
	Rate     float64 // Frames per second
	Frames   int     // 0 plays until the context is done
}

// ErrRate is returned by Run when the frame rate is not positive
var ErrRate = errors.New("frame rate must be positive")

// Run plays the animation, calling fn once per frame. It returns the first
// error from fn, or the context error when playback is interrupted.
func (p *Player) Run(ctx context.Context, fn func(Frame) error) error {
	if !(p.Rate > 0) {
		return ErrRate
	}
	limiter := rate.NewLimiter(rate.Limit(p.Rate), 1)

	angle := WrapAngle(p.StartDeg)
	for i := 0; p.Frames <= 0 || i < p.Frames; i++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		frame := Frame{
			Index:    i,
			AngleDeg: angle,
			Rotated:  plane.TransformStress(p.Stress, angle),
		}
		if err := fn(frame); err != nil {
			return err
		}
		angle = WrapAngle(angle + p.StepDeg)
	}
	return nil
}
