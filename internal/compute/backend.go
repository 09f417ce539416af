package compute

// Params are the field constants a stepper needs: the standard
// gravitational parameter and the clamp window for the force law.
type Params struct {
	Mu      float32
	MinDist float32
	MaxDist float32
}

// Stepper advances a swarm by one timestep. Implementations keep the
// swarm's Data slice current so callers can render straight from it.
type Stepper interface {
	Name() string
	Available() bool
	Step(s *Swarm, dt float32)
	Cleanup()
}

// AutoSelect initializes the GPU stepper for s and returns it, falling
// back to the CPU stepper when no compute-capable OpenGL context is
// current. Call it only after the window exists.
func AutoSelect(p Params, s *Swarm) Stepper {
	gpu := NewGLStepper(p)
	if err := gpu.Init(s); err == nil {
		return gpu
	}
	return NewCPUStepper(p)
}
