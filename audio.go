package soitin

// AudioSink accepts finished audio buffers, e.g. for playback.
type AudioSink interface {
	WriteAudio(buffer AudioBuffer) error
	Close() error
}

// AudioContext is a connection to an audio backend that can hand out sinks.
type AudioContext interface {
	Output() AudioSink
	Close() error
}
