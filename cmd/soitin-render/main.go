package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/soitin"
	"github.com/vsariola/soitin/midi"
	"github.com/vsariola/soitin/oto"
	"github.com/vsariola/soitin/version"
)

func main() {
	stdout := flag.Bool("s", false, "Do not write files; write the encoded audio to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the original file is.")
	play := flag.Bool("p", false, "Play the rendered audio after writing it.")
	rawOut := flag.Bool("r", false, "Output the rendered audio as a headerless .raw file.")
	wavOut := flag.Bool("w", false, "Output the rendered audio as a .wav file. Default when no other output is defined.")
	floatOut := flag.Bool("f", false, "Write 32-bit float samples instead of 16-bit signed PCM.")
	oscillator := flag.String("osc", "sine", "Oscillator waveform for .mid and melody inputs: sine, square or saw.")
	sampleRate := flag.Int("rate", soitin.DefaultSampleRate, "Sample rate in Hz for .mid and melody inputs.")
	melody := flag.String("m", "", "Render the given melody string, e.g. \"C4:0.5 E4:0.5 G4:1\", in addition to any files.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if (flag.NArg() == 0 && *melody == "") || *help {
		flag.Usage()
		os.Exit(0)
	}
	if !*rawOut {
		*wavOut = true
	}
	waveform, err := soitin.ParseWaveform(*oscillator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	synth := soitin.DefaultSynth()
	synth.SampleRate = *sampleRate
	synth.Oscillator = waveform
	var audioContext *oto.OtoContext
	process := func(filename string, score soitin.Score) error {
		output := func(extension string, contents []byte) error {
			if *stdout {
				_, err := os.Stdout.Write(contents)
				return err
			}
			dir, name := filepath.Split(filename)
			if *directory != "" {
				dir = *directory
			}
			name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
			f := filepath.Join(dir, name)
			if dir != "" {
				if err := os.MkdirAll(dir, os.ModePerm); err != nil {
					return fmt.Errorf("could not create output directory %v: %v", dir, err)
				}
			}
			err := os.WriteFile(f, contents, 0644)
			if err != nil {
				return fmt.Errorf("could not write file %v: %v", f, err)
			}
			return nil
		}
		buffer := score.Render()
		if *wavOut {
			wav, err := buffer.Wav(score.Synth.SampleRate, !*floatOut)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %v", err)
			}
			if err := output(".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		if *rawOut {
			raw, err := buffer.Raw(!*floatOut)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
		}
		if *play {
			if audioContext == nil {
				var err error
				audioContext, err = oto.NewContext(score.Synth.SampleRate)
				if err != nil {
					return fmt.Errorf("could not acquire oto AudioContext: %v", err)
				}
			}
			sink := audioContext.Output()
			if err := sink.WriteAudio(buffer); err != nil {
				sink.Close()
				return fmt.Errorf("could not play audio: %v", err)
			}
			if err := sink.Close(); err != nil {
				return fmt.Errorf("could not finish playback: %v", err)
			}
		}
		return nil
	}
	load := func(filename string) (soitin.Score, error) {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".mid", ".midi":
			notes, err := midi.ReadFile(filename)
			if err != nil {
				return soitin.Score{}, err
			}
			return soitin.Score{Synth: synth, Notes: notes}, nil
		default:
			inputBytes, err := os.ReadFile(filename)
			if err != nil {
				return soitin.Score{}, fmt.Errorf("could not read file %v: %v", filename, err)
			}
			score := soitin.Score{Synth: synth} // file settings override the flags
			if errJSON := json.Unmarshal(inputBytes, &score); errJSON != nil {
				score = soitin.Score{Synth: synth}
				if errYaml := yaml.Unmarshal(inputBytes, &score); errYaml != nil {
					return soitin.Score{}, fmt.Errorf("the score could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
				}
			}
			return score, nil
		}
	}
	retval := 0
	if *melody != "" {
		notes, err := soitin.ParseMelody(*melody)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not parse melody: %v\n", err)
			retval = 1
		} else if err := process("melody", soitin.Score{Synth: synth, Notes: notes}); err != nil {
			fmt.Fprintf(os.Stderr, "could not render melody: %v\n", err)
			retval = 1
		}
	}
	for _, param := range flag.Args() {
		var files []string
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			for _, pattern := range []string{"*.mid", "*.midi", "*.yml", "*.json"} {
				matches, err := filepath.Glob(filepath.Join(param, pattern))
				if err != nil {
					fmt.Fprintf(os.Stderr, "could not glob the path %v: %v\n", param, err)
					retval = 1
					continue
				}
				files = append(files, matches...)
			}
		} else {
			files = []string{param}
		}
		for _, file := range files {
			score, err := load(file)
			if err == nil {
				err = process(file, score)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Soitin command line utility for rendering .mid/.yml/.json scores to audio files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
