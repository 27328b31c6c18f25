package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gomohr/internal/triaxial"
)

// Environment variables recognised by Load
const (
	EnvMaxIterations = "GOMOHR_MAX_ITERATIONS"
	EnvTolerance     = "GOMOHR_TOLERANCE"
	EnvAxisLimit     = "GOMOHR_AXIS_LIMIT"
	EnvFrameRate     = "GOMOHR_FRAME_RATE"
	EnvAngleStep     = "GOMOHR_ANGLE_STEP"
)

// Display and playback defaults
const (
	DefaultAxisLimit = 400.0 // Diagram axis half-range (MPa)
	DefaultFrameRate = 50.0  // Playback frames per second (20 ms interval)
	DefaultAngleStep = 0.2   // Playback rotation per frame (degrees)
)

// Config holds the tunable settings shared by the commands
type Config struct {
	Solver    triaxial.SolverOptions
	AxisLimit float64 // MPa
	FrameRate float64 // Hz
	AngleStep float64 // degrees per frame
}

// Default returns the compiled-in settings
func Default() Config {
	return Config{
		Solver:    triaxial.DefaultSolverOptions(),
		AxisLimit: DefaultAxisLimit,
		FrameRate: DefaultFrameRate,
		AngleStep: DefaultAngleStep,
	}
}

// Error reports a malformed configuration value
type Error struct {
	Key   string
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var errNotPositive = errors.New("must be positive")

// Load reads the optional env files (".env" when none are given) and then
// the process environment. A missing env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, starting from Default
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvMaxIterations); ok {
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = errNotPositive
		}
		if err != nil {
			return Config{}, &Error{Key: EnvMaxIterations, Value: v, Err: err}
		}
		cfg.Solver.MaxIterations = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvTolerance, &cfg.Solver.Tolerance},
		{EnvAxisLimit, &cfg.AxisLimit},
		{EnvFrameRate, &cfg.FrameRate},
		{EnvAngleStep, &cfg.AngleStep},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err == nil && !(x > 0) {
			err = errNotPositive
		}
		if err != nil {
			return Config{}, &Error{Key: f.key, Value: v, Err: err}
		}
		*f.dst = x
	}

	return cfg, nil
}
