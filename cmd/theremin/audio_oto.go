package main

// Pull-based audio output on oto, for systems where SDL audio is unavailable
// or another program holds the device. Joystick input still goes through
// SDL. The backend's own mutex plays the role of the playback lock: Read
// renders under it, the input side takes it through Lock and Unlock.

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

type otoOutput struct {
	ctx    *oto.Context
	player *oto.Player
	rate   int

	mu     sync.Mutex
	render func([]int16)
	buf    []int16
}

func openOtoOutput(rate int, fn func([]int16)) (*otoOutput, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open oto context: %w", err)
	}
	<-ready

	o := &otoOutput{ctx: ctx, rate: rate, render: fn}
	o.player = ctx.NewPlayer(o)
	return o, nil
}

// Read renders the next chunk of samples. It runs on oto's playback
// goroutine.
func (o *otoOutput) Read(p []byte) (int, error) {
	n := len(p) / 2
	if cap(o.buf) < n {
		o.buf = make([]int16, n)
	}
	out := o.buf[:n]

	o.mu.Lock()
	o.render(out)
	o.mu.Unlock()

	for i, s := range out {
		p[2*i] = byte(s)
		p[2*i+1] = byte(s >> 8)
	}
	return n * 2, nil
}

func (o *otoOutput) start()          { o.player.Play() }
func (o *otoOutput) Lock()           { o.mu.Lock() }
func (o *otoOutput) Unlock()         { o.mu.Unlock() }
func (o *otoOutput) SampleRate() int { return o.rate }

func (o *otoOutput) Close() error {
	return o.player.Close()
}
