package main

import (
	"bytes"
	"io"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"stagseek/internal/assets"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

type chimer interface {
	Chime()
}

type silent struct{}

func (silent) Chime() {}

// beeper plays the found sound through the speaker.
type beeper struct {
	clip *beep.Buffer
}

func newBeeper(clip *beep.Buffer) (*beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beeper{clip: clip}, nil
}

// decodeClip decodes an mp3 into memory at the speaker's sample rate.
func decodeClip(data []byte) (*beep.Buffer, error) {
	stream, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	src := format.SampleRate
	format.SampleRate = sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(beep.Resample(resampleQuality, src, sampleRate, stream))
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// loadClip reads the found sound from the asset set, falling back to a tone.
func loadClip(m *assets.Manager) *beep.Buffer {
	data, err := m.Bytes(assets.FoundSound)
	if err == nil {
		var clip *beep.Buffer
		if clip, err = decodeClip(data); err == nil {
			return clip
		}
	}
	log.Printf("sound: %s: %v, using a tone", assets.FoundSound, err)
	return toneClip()
}

// toneClip is the fallback when the asset can't be decoded: two short notes.
func toneClip() *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	note := sampleRate.N(70 * time.Millisecond)
	for _, freq := range []float64{660, 990} {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			log.Printf("sound: tone %v Hz: %v", freq, err)
			continue
		}
		buf.Append(beep.Take(note, tone))
	}
	return buf
}

func (b *beeper) Chime() {
	if b.clip == nil || b.clip.Len() == 0 {
		return
	}
	speaker.Play(b.clip.Streamer(0, b.clip.Len()))
}
