// Package midi extracts note events from Standard MIDI Files and converts
// them into soitin Notes. All MIDI parsing, including the tempo map, is
// delegated to gitlab.com/gomidi/midi; this package only pairs note-ons with
// note-offs and converts keys and velocities to the renderer's units.
package midi

import (
	"fmt"
	"io"
	"sort"

	"github.com/vsariola/soitin"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile reads the Standard MIDI File at path and returns the note events
// of all tracks, ordered by start time.
func ReadFile(path string) ([]soitin.Note, error) {
	notes, err := extract(smf.ReadTracks(path))
	if err != nil {
		return nil, fmt.Errorf("reading %v failed: %w", path, err)
	}
	return notes, nil
}

// Read reads a Standard MIDI File from r and returns the note events of all
// tracks, ordered by start time.
func Read(r io.Reader) ([]soitin.Note, error) {
	return extract(smf.ReadTracksFrom(r))
}

type (
	activeKey struct {
		track        int
		channel, key uint8
	}

	activeNote struct {
		start    float64 // seconds
		velocity float64
	}
)

func extract(reader *smf.TracksReader) ([]soitin.Note, error) {
	var notes []soitin.Note
	// Notes held down, keyed per track so that identical keys on different
	// tracks never pair with each other. A note-on with velocity 0 counts as
	// a note-off; gomidi's GetNoteStart/GetNoteEnd make that distinction.
	active := make(map[activeKey][]activeNote)
	end := 0.0
	reader.Do(func(ev smf.TrackEvent) {
		var channel, key, velocity uint8
		now := float64(ev.AbsMicroSeconds) / 1e6
		if now > end {
			end = now
		}
		switch {
		case ev.Message.GetNoteStart(&channel, &key, &velocity):
			k := activeKey{track: ev.TrackNo, channel: channel, key: key}
			active[k] = append(active[k], activeNote{start: now, velocity: float64(velocity) / 127})
		case ev.Message.GetNoteEnd(&channel, &key):
			k := activeKey{track: ev.TrackNo, channel: channel, key: key}
			held := active[k]
			if len(held) == 0 {
				return // note-off without a matching note-on
			}
			notes = appendNote(notes, key, held[0], now)
			active[k] = held[1:]
		}
	})
	if err := reader.Error(); err != nil {
		return nil, err
	}
	// close notes still held when the file ends
	for k, held := range active {
		for _, a := range held {
			notes = appendNote(notes, k.key, a, end)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	return notes, nil
}

func appendNote(notes []soitin.Note, key uint8, a activeNote, end float64) []soitin.Note {
	if end <= a.start {
		return notes // zero-length note, nothing to render
	}
	frequency, err := soitin.MidiPitch(int(key))
	if err != nil {
		return notes // cannot happen for 7-bit keys
	}
	return append(notes, soitin.Note{
		Frequency: frequency,
		Time:      a.start,
		Duration:  end - a.start,
		Velocity:  a.velocity,
	})
}
