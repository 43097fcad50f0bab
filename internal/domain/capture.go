package domain

// CapturePhase is the state of a tab's capture/analysis flow.
type CapturePhase string

const (
	CapturePhaseIdle         CapturePhase = "idle"
	CapturePhaseCapturing    CapturePhase = "capturing"
	CapturePhaseRecommending CapturePhase = "recommending"
)

func (p CapturePhase) String() string { return string(p) }

// FaceRegion is one face found by the inference backend. Only the count
// drives the flow; the box is kept for logging and clients.
type FaceRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Score  float64 `json:"score"`
}

// CaptureSession is a snapshot of the capture state machine.
// Mood is set if and only if the last detection found at least one face.
type CaptureSession struct {
	Phase               CapturePhase
	Analyzing           bool
	Mood                *Mood
	Error               string
	DetectorReady       bool
	ShowRecommendations bool
}
