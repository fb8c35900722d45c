package main

import (
	"bytes"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"stagseek/internal/assets"
)

const SampleRate = 44100

// soundPlayer plays the stag-found clip. The clip is decoded once; each play
// gets its own player so quick finds overlap.
type soundPlayer struct {
	ctx     *audio.Context
	pcm     []byte
	playing []*audio.Player
}

func newSoundPlayer(m *assets.Manager, muted bool) *soundPlayer {
	sp := &soundPlayer{}
	if muted {
		return sp
	}

	data, err := m.Bytes(assets.FoundSound)
	if err != nil {
		log.Fatalf("Failed to read sound '%s': %v", assets.FoundSound, err)
	}
	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Failed to decode sound '%s': %v", assets.FoundSound, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		log.Fatalf("Failed to decode sound '%s': %v", assets.FoundSound, err)
	}

	sp.ctx = audio.NewContext(SampleRate)
	sp.pcm = pcm
	return sp
}

func (sp *soundPlayer) Play() {
	if sp.ctx == nil {
		return
	}

	live := sp.playing[:0]
	for _, p := range sp.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	sp.playing = live

	p := sp.ctx.NewPlayerFromBytes(sp.pcm)
	p.Play()
	sp.playing = append(sp.playing, p)
}
