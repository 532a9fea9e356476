package domain

import "time"

// CognitiveStatus is the read-only aggregate served by the dashboard endpoint.
type CognitiveStatus struct {
	ForegroundThreads []string
	BackgroundThreads []string
	EmotionalLoad     LoadLevel
	EnergyLevel       LoadLevel
	OpenLoopsEstimate int
	CurrentFocus      string
	FocusLocked       bool
	ActivePredictions int
	PendingTasks      int
	CapturedIdeas     int
	Timestamp         time.Time
}

func (s CognitiveStatus) Clone() CognitiveStatus {
	clone := s
	clone.ForegroundThreads = append([]string(nil), s.ForegroundThreads...)
	clone.BackgroundThreads = append([]string(nil), s.BackgroundThreads...)
	return clone
}

// IsStale reports whether the snapshot is older than maxAge. A zero maxAge
// disables the check.
func (s CognitiveStatus) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.Timestamp.IsZero() {
		return true
	}
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.Timestamp) > maxAge
}
