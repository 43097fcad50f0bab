package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/jpeg"
	"strings"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/detector"
)

// ErrNoFrame is returned by Snapshot before the camera delivered a frame.
var ErrNoFrame = errors.New("no camera frame available")

const jpegDataURLPrefix = "data:image/jpeg;base64,"

// FrameSource holds the latest still pushed by the tab's camera.
type FrameSource struct {
	maxBytes int

	mu     sync.RWMutex
	latest *detector.Frame
}

// NewFrameSource creates an empty source accepting frames up to maxBytes.
func NewFrameSource(maxBytes int) *FrameSource {
	return &FrameSource{maxBytes: maxBytes}
}

// PushDataURL accepts a "data:image/jpeg;base64,..." still from the browser.
func (s *FrameSource) PushDataURL(dataURL string) error {
	payload, ok := strings.CutPrefix(dataURL, jpegDataURLPrefix)
	if !ok {
		return errors.New("capture.PushDataURL: expected a JPEG data URL")
	}
	if s.maxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > s.maxBytes {
		return fmt.Errorf("capture.PushDataURL: frame exceeds %d bytes", s.maxBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("capture.PushDataURL: decode base64: %w", err)
	}
	return s.Push(raw)
}

// Push stores a JPEG still after checking its header.
func (s *FrameSource) Push(raw []byte) error {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("capture.Push: decode jpeg: %w", err)
	}

	f := &detector.Frame{JPEG: raw, Width: cfg.Width, Height: cfg.Height}

	s.mu.Lock()
	s.latest = f
	s.mu.Unlock()
	return nil
}

// Snapshot returns a private copy of the latest frame.
func (s *FrameSource) Snapshot(ctx context.Context) (detector.Frame, error) {
	if err := ctx.Err(); err != nil {
		return detector.Frame{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return detector.Frame{}, ErrNoFrame
	}
	return detector.Frame{
		JPEG:   bytes.Clone(s.latest.JPEG),
		Width:  s.latest.Width,
		Height: s.latest.Height,
	}, nil
}

// Release drops the held frame.
func (s *FrameSource) Release() {
	s.mu.Lock()
	s.latest = nil
	s.mu.Unlock()
}
