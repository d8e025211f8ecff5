package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastNarrative(jobID string, msgType string, payload interface{})
}

// WebSocket message types for narrative jobs
const (
	MsgNarrativeReady  = "narrative_ready"
	MsgNarrativeFailed = "narrative_failed"
)
