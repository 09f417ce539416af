// Package audio turns a running field into an ambient pad. The chord
// is fixed; the field's kinetic energy drives a low-pass filter, so a
// hot swarm sounds brighter than a cold one.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// A minor add9, low voicing. Triangle oscillators keep it soft.
var chord = []float64{110.00, 130.81, 164.81, 196.00, 246.94}

// Sonifier owns an output-only portaudio stream. SetEnergy is safe to
// call from the render loop while the stream runs.
type Sonifier struct {
	stream *portaudio.Stream
	active bool

	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	mu           sync.Mutex
	energy       float64
	energySmooth float64
	peak         float64
}

func NewSonifier() *Sonifier {
	delayLen := int(float64(SampleRate) * 0.45)
	return &Sonifier{
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Start opens the default stereo output. On machines without a usable
// device it returns the error and the caller runs silent.
func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start stream: %w", err)
	}

	s.stream = stream
	s.active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
		portaudio.Terminate()
	}
	s.active = false
}

func (s *Sonifier) Active() bool { return s.active }

// SetEnergy hands the latest field energy to the audio thread.
func (s *Sonifier) SetEnergy(e float64) {
	s.mu.Lock()
	s.energy = e
	s.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// process runs on the portaudio thread. It must not allocate or block
// beyond the brief energy handoff.
func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	target := s.energy
	s.mu.Unlock()

	// Morph slowly, and self-scale so wildly different fields all land
	// in the same cutoff range.
	s.energySmooth = s.energySmooth*0.995 + target*0.005
	mag := math.Abs(s.energySmooth)
	if mag > s.peak {
		s.peak = mag
	} else {
		s.peak *= 0.999
	}
	norm := 0.0
	if s.peak > 0 {
		norm = mag / s.peak
	}
	cutoff := 250.0 + 1500.0*norm

	dt := 1.0 / float64(SampleRate)
	const vol = 0.25

	for i := 0; i < len(out[0]); i++ {
		sampleL, sampleR := 0.0, 0.0
		for j, f := range chord {
			oscL := triangle(s.time * (f * 0.999))
			oscR := triangle(s.time * (f * 1.001))

			g := 1.0 / float64(len(chord))
			lfo := math.Sin(s.time*0.2 + float64(j))
			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, s.filterState[0] = lpf(sampleL, cutoff, dt, s.filterState[0])
		outR, s.filterState[1] = lpf(sampleR, cutoff, dt, s.filterState[1])

		// Ping-pong delay: each side hears a little of the other.
		delayL := s.delayLine[0][s.delayHead]
		delayR := s.delayLine[1][s.delayHead]
		mixL := outL + delayL*0.3 + delayR*0.12
		mixR := outR + delayR*0.3 + delayL*0.12

		s.delayLine[0][s.delayHead] = mixL * 0.65
		s.delayLine[1][s.delayHead] = mixR * 0.65
		s.delayHead = (s.delayHead + 1) % len(s.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		s.time += dt
	}
}
