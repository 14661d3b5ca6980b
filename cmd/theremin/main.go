// Command theremin turns a joystick into a monophonic synthesizer: one axis
// controls pitch, another volume, and buttons cycle the waveform. Audio is
// rendered in real time, cross-fading between notes to avoid crackling.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/audetto/theremin"
	"github.com/audetto/theremin/wave"
)

const (
	axisVolume = 1
	axisPitch  = 4

	// How long to keep rendering after the final damp, so the fade-out is
	// heard instead of hard-cut. Generously above the envelope settling
	// time at the default decay.
	drainMillis = 500
)

// An output plays samples rendered by the session. Lock and Unlock guard the
// session against the render thread; they are held by the input side only
// and only around note insertion and waveform changes.
type output interface {
	start()
	Lock()
	Unlock()
	SampleRate() int
	Close() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "theremin:", err)
		os.Exit(1)
	}
}

func run() error {
	octaves := flag.Float64("octaves", 2, "pitch range of the frequency axis, in octaves")
	decay := flag.Float64("decay", 50, "envelope decay rate, in 1/seconds")
	rate := flag.Int("rate", 48000, "requested sample rate, in Hz")
	backend := flag.String("backend", "sdl", "audio output backend: sdl or oto")
	joyIndex := flag.Int("joystick", 0, "joystick index")
	quitButton := flag.Int("quit-button", 6, "button that quits; any other button cycles the waveform")
	record := flag.String("record", "", "record the session to this wave file")
	flag.Parse()

	if err := sdl.Init(sdl.INIT_JOYSTICK | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}
	defer sdl.Quit()

	joy := sdl.JoystickOpen(*joyIndex)
	if joy == nil {
		return fmt.Errorf("open joystick %d: %v", *joyIndex, sdl.GetError())
	}
	defer joy.Close()

	fmt.Printf("Opened joystick %d\n", *joyIndex)
	fmt.Printf("Name: %s\n", joy.Name())
	fmt.Printf("Axes: %d, buttons: %d, balls: %d\n", joy.NumAxes(), joy.NumButtons(), joy.NumBalls())

	var (
		session *theremin.Session
		rec     *wave.Writer
	)
	renderTo := func(out []int16) {
		session.Render(out)
		if rec != nil {
			rec.Write(out)
		}
	}

	var out output
	switch *backend {
	case "sdl":
		o, err := openSDLOutput(*rate, renderTo)
		if err != nil {
			return err
		}
		out = o
	case "oto":
		o, err := openOtoOutput(*rate, renderTo)
		if err != nil {
			return err
		}
		out = o
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
	session = theremin.NewSession(out.SampleRate(), *decay)

	if *record != "" {
		w, err := wave.NewFile(*record, out.SampleRate())
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		rec = w
	}

	out.start()

	// The translator state lives on this thread: the latest axis targets,
	// combined into a fresh note on every axis event.
	var freq, vol float64
	id := joy.InstanceID()

	running := true
	for running {
		event := sdl.WaitEvent()
		if event == nil {
			continue
		}

		switch e := event.(type) {
		case *sdl.JoyAxisEvent:
			if e.Which != id {
				continue
			}
			switch e.Axis {
			case axisVolume:
				vol = theremin.AxisVolume(e.Value)
			case axisPitch:
				freq = theremin.InterpolateFrequency(theremin.AxisRatio(e.Value), *octaves)
			default:
				continue
			}
			out.Lock()
			session.AddNote(freq, vol)
			out.Unlock()

		case *sdl.JoyButtonEvent:
			if e.Which != id || e.State != sdl.PRESSED {
				continue
			}
			if int(e.Button) == *quitButton {
				running = false
				continue
			}
			out.Lock()
			session.CycleWaveform()
			out.Unlock()

		case *sdl.QuitEvent:
			running = false
		}
	}

	// Fade the current note out and let it settle before the device closes,
	// so quitting does not click.
	out.Lock()
	session.Damp()
	out.Unlock()
	sdl.Delay(drainMillis)

	if err := out.Close(); err != nil {
		return fmt.Errorf("close audio: %w", err)
	}
	if rec != nil {
		n := rec.SampleCount()
		if err := rec.Close(); err != nil {
			return fmt.Errorf("finalize recording: %w", err)
		}
		fmt.Printf("Recorded %d samples to %s\n", n, *record)
	}
	return nil
}
