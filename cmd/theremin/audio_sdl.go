package main

// SDL audio output. SDL delivers the render callback on its own audio
// thread, already holding the device's playback lock, and the callback must
// be a cgo-exported function: the package-level render variable exists only
// to carry the render closure across that boundary.

// typedef unsigned char Uint8;
// void thereminCallback(void *userdata, Uint8 *stream, int len);
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// render is installed before the device is unpaused and never changes
// afterwards.
var render func([]int16)

//export thereminCallback
func thereminCallback(_ unsafe.Pointer, stream *C.Uint8, n C.int) {
	out := unsafe.Slice((*int16)(unsafe.Pointer(stream)), int(n)/2)
	render(out)
}

type sdlOutput struct {
	dev  sdl.AudioDeviceID
	rate int
}

// openSDLOutput opens the default audio device for signed 16-bit mono
// playback. The driver may adjust the sample rate but not the sample format,
// which the render path is written for. The device starts paused.
func openSDLOutput(rate int, fn func([]int16)) (*sdlOutput, error) {
	render = fn

	want := sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  4096,
		Callback: sdl.AudioCallback(C.thereminCallback),
	}
	var have sdl.AudioSpec
	dev, err := sdl.OpenAudioDevice("", false, &want, &have, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	return &sdlOutput{dev: dev, rate: int(have.Freq)}, nil
}

func (o *sdlOutput) start()          { sdl.PauseAudioDevice(o.dev, false) }
func (o *sdlOutput) Lock()           { sdl.LockAudioDevice(o.dev) }
func (o *sdlOutput) Unlock()         { sdl.UnlockAudioDevice(o.dev) }
func (o *sdlOutput) SampleRate() int { return o.rate }

func (o *sdlOutput) Close() error {
	sdl.CloseAudioDevice(o.dev)
	return nil
}
