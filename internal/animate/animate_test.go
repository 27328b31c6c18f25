package animate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gomohr/internal/plane"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{540, 180},
		{-540, 180},
		{-541, 179},
		{725, 5},
		{179.9, 179.9},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("WrapAngle(%g) = %g out of range", tt.in, got)
		}
	}
}

func TestPlayerFrames(t *testing.T) {
	s := plane.StressState{SigmaX: 200, SigmaY: -200, TauXY: 200}
	p := &Player{Stress: s, StartDeg: 179.5, StepDeg: 0.2, Rate: 1e6, Frames: 5}

	var got []Frame
	err := p.Run(context.Background(), func(f Frame) error {
		got = append(got, f)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("%d frames, want 5", len(got))
	}

	want := []float64{179.5, 179.7, 179.9, -179.9, -179.7}
	for i, f := range got {
		if f.Index != i {
			t.Errorf("frame %d index %d", i, f.Index)
		}
		if math.Abs(f.AngleDeg-want[i]) > 1e-9 {
			t.Errorf("frame %d angle %g, want %g", i, f.AngleDeg, want[i])
		}
		if f.Rotated != plane.TransformStress(s, f.AngleDeg) {
			t.Errorf("frame %d stress %+v", i, f.Rotated)
		}
	}
}

func TestPlayerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &Player{StepDeg: 1, Rate: 1e6}
	n := 0
	err := p.Run(ctx, func(Frame) error {
		n++
		if n == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if n != 3 {
		t.Errorf("%d frames after cancel, want 3", n)
	}
}

func TestPlayerCallbackError(t *testing.T) {
	boom := errors.New("boom")
	p := &Player{Rate: 1e6, Frames: 10}
	err := p.Run(context.Background(), func(f Frame) error {
		if f.Index == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestPlayerRejectsRate(t *testing.T) {
	p := &Player{Frames: 1}
	if err := p.Run(context.Background(), func(Frame) error { return nil }); !errors.Is(err, ErrRate) {
		t.Errorf("err = %v, want ErrRate", err)
	}
}
