// Package oto plays rendered audio buffers through the oto library.
package oto

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/soitin"
)

type OtoContext struct {
	context *oto.Context
}

type OtoOutput struct {
	player    *oto.Player
	writer    *io.PipeWriter
	tmpBuffer []byte
}

// NewContext creates an audio context playing mono 16-bit audio at the given
// sample rate.
func NewContext(sampleRate int) (*OtoContext, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context}, nil
}

// Output returns a sink that plays every written buffer. Closing the sink
// blocks until everything written has been heard.
func (c *OtoContext) Output() soitin.AudioSink {
	reader, writer := io.Pipe()
	player := c.context.NewPlayer(reader)
	player.Play()
	return &OtoOutput{player: player, writer: writer, tmpBuffer: make([]byte, 0)}
}

// Close implements soitin.AudioContext; the underlying oto context has no
// close of its own.
func (c *OtoContext) Close() error {
	return nil
}

// WriteAudio implements soitin.AudioSink, converting the float buffer to
// 16-bit little-endian samples for the player.
func (o *OtoOutput) WriteAudio(buffer soitin.AudioBuffer) error {
	// reuse the old capacity of tmpBuffer by setting its length to zero, and
	// save the converted buffer so the capacity is there next time
	o.tmpBuffer = FloatBufferTo16BitLE(buffer, o.tmpBuffer[:0])
	if _, err := o.writer.Write(o.tmpBuffer); err != nil {
		return fmt.Errorf("cannot write to player: %w", err)
	}
	return nil
}

// Close drains the player and disposes of it.
func (o *OtoOutput) Close() error {
	o.writer.Close()
	for o.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}
