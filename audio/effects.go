package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// unlockIntervals are semitone steps of the rising major arpeggio
var unlockIntervals = [...]float64{0, 4, 7, 12}

// CreateUnlockChime generates a rising arpeggio for a confirmed unlock
// Higher tiers start a step higher so deep unlocks sound brighter
func CreateUnlockChime(rate beep.SampleRate, tier int) beep.Streamer {
	root := parameter.UnlockChimeRoot * math.Pow(2, float64(min(tier, 12))/24)
	notes := make([]beep.Streamer, 0, len(unlockIntervals))
	for _, semis := range unlockIntervals {
		freq := root * math.Pow(2, semis/12)
		osc := NewOscillator(freq, parameter.UnlockChimeNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, parameter.UnlockChimeNoteDuration, parameter.EffectAttack, parameter.EffectRelease, rate))
	}
	return newVolume(beep.Seq(notes...), parameter.UnlockChimeVolume*parameter.MasterVolume)
}

// CreateDeniedBuzz generates a short harsh buzz for a rejected click
func CreateDeniedBuzz(rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(parameter.DeniedBuzzFreq, parameter.DeniedBuzzDuration, WaveSaw, rate)
	harm := NewOscillator(parameter.DeniedBuzzFreq*2, parameter.DeniedBuzzDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(harm, 0.2))
	shaped := NewEnvelope(mixed, parameter.DeniedBuzzDuration, parameter.EffectAttack, parameter.EffectRelease, rate)
	return newVolume(shaped, parameter.DeniedBuzzVolume*parameter.MasterVolume)
}

// CreateHoverTick generates a faint click on hover enter
func CreateHoverTick(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, parameter.HoverTickFreq)
	if err != nil {
		return nil, err
	}
	n := rate.N(parameter.HoverTickDuration)
	shaped := NewEnvelope(beep.Take(n, tone), parameter.HoverTickDuration, parameter.EffectAttack, parameter.HoverTickDuration/2, rate)
	return newVolume(shaped, parameter.HoverTickVolume*parameter.MasterVolume), nil
}
