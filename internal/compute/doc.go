// Package compute steps large particle swarms for the GUI.
//
// The float64 engine tops out around a few thousand bodies at 60
// frames per second. For bigger populations the swarm path trades
// precision for throughput: particles are massless float32 test
// bodies in a flat buffer, stepped either by a chunked CPU loop or by
// an OpenGL 4.3 compute shader.
//
//	swarm, _ := compute.RingSwarm(100000, 1, 1e6, 100, 2000, 0, 42)
//	stepper := compute.AutoSelect(params, swarm)
//	stepper.Step(swarm, 0.01)
//
// [AutoSelect] probes the GPU and falls back to the CPU stepper; call
// it only once a window (and with it a GL context) exists.
package compute
