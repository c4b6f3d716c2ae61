// Package mp4probe reads container-level metadata from MP4 files by
// parsing their boxes. No video samples are decoded.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Prober inspects MP4 containers for duration, frame rate and pixel
// dimensions. It handles both progressive files (sample tables) and
// fragmented files (movie fragments).
type Prober struct{}

// Compile-time check that Prober implements ports.ClipProber.
var _ ports.ClipProber = (*Prober)(nil)

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe inspects the MP4 file at path and returns its metadata.
func (p *Prober) Probe(path string) (ports.ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := p.ProbeReader(f)
	if err != nil {
		return ports.ClipInfo{}, err
	}
	info.Path = path
	return info, nil
}

// ProbeReader inspects an MP4 read from an io.ReadSeeker. The returned
// info carries no Path.
func (p *Prober) ProbeReader(reader io.ReadSeeker) (ports.ClipInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() {
		return probeFragmented(mp4File)
	}
	return probeProgressive(mp4File)
}

func probeProgressive(mp4File *mp4.File) (ports.ClipInfo, error) {
	if mp4File.Moov == nil {
		return ports.ClipInfo{}, fmt.Errorf("no moov box found")
	}

	trak := findVideoTrak(mp4File.Moov.Traks)
	if trak == nil {
		return ports.ClipInfo{}, fmt.Errorf("no video track found")
	}

	var timescale uint32 = 1000
	var mediaDuration uint64
	if trak.Mdia != nil && trak.Mdia.Mdhd != nil {
		timescale = trak.Mdia.Mdhd.Timescale
		mediaDuration = trak.Mdia.Mdhd.Duration
	}

	if trak.Mdia == nil || trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return ports.ClipInfo{}, fmt.Errorf("no sample table found")
	}
	stbl := trak.Mdia.Minf.Stbl

	if stbl.Stsz == nil {
		return ports.ClipInfo{}, fmt.Errorf("no stsz box found")
	}
	frameCount := int(stbl.Stsz.SampleNumber)

	// The stts entries are the authoritative media duration; mdhd is
	// the fallback when they are absent.
	var totalDur uint64
	if stbl.Stts != nil {
		for i, count := range stbl.Stts.SampleCount {
			totalDur += uint64(count) * uint64(stbl.Stts.SampleTimeDelta[i])
		}
	}
	if totalDur == 0 {
		totalDur = mediaDuration
	}

	width, height := trackDimensions(trak)

	return buildInfo(width, height, frameCount, totalDur, timescale), nil
}

func probeFragmented(mp4File *mp4.File) (ports.ClipInfo, error) {
	if mp4File.Init == nil || mp4File.Init.Moov == nil {
		return ports.ClipInfo{}, fmt.Errorf("no init segment found")
	}

	trak := findVideoTrak(mp4File.Init.Moov.Traks)
	if trak == nil {
		return ports.ClipInfo{}, fmt.Errorf("no video track found")
	}
	videoTrackID := trak.Tkhd.TrackID

	var timescale uint32 = 1000
	if trak.Mdia != nil && trak.Mdia.Mdhd != nil {
		timescale = trak.Mdia.Mdhd.Timescale
	}

	// Find trex for the track
	var trex *mp4.TrexBox
	if mp4File.Init.Moov.Mvex != nil {
		for _, t := range mp4File.Init.Moov.Mvex.Trexs {
			if t.TrackID == videoTrackID {
				trex = t
				break
			}
		}
	}

	var frameCount int
	var totalDur uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}

			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != videoTrackID {
					continue
				}

				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return ports.ClipInfo{}, fmt.Errorf("get samples: %w", err)
				}

				for _, sample := range samples {
					frameCount++
					totalDur += uint64(sample.Dur)
				}
			}
		}
	}

	width, height := trackDimensions(trak)

	return buildInfo(width, height, frameCount, totalDur, timescale), nil
}

func findVideoTrak(traks []*mp4.TrakBox) *mp4.TrakBox {
	for _, trak := range traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

// trackDimensions prefers the coded size from the visual sample entry
// and falls back to the 16.16 fixed-point track header size.
func trackDimensions(trak *mp4.TrakBox) (int, int) {
	if trak.Mdia != nil && trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsd != nil {
		for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
				if vse.Width > 0 && vse.Height > 0 {
					return int(vse.Width), int(vse.Height)
				}
			}
		}
	}
	if trak.Tkhd != nil {
		return int(trak.Tkhd.Width >> 16), int(trak.Tkhd.Height >> 16)
	}
	return 0, 0
}

func buildInfo(width, height, frameCount int, totalDur uint64, timescale uint32) ports.ClipInfo {
	info := ports.ClipInfo{
		Width:      width,
		Height:     height,
		FrameCount: frameCount,
	}
	if timescale > 0 {
		info.DurationSec = float64(totalDur) / float64(timescale)
	}
	if info.DurationSec > 0 {
		info.FPS = float64(frameCount) / info.DurationSec
	}
	return info
}
