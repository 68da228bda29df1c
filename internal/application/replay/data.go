package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	X bool `json:"x,omitempty"` // Fire held
}

// ReplayData contains all data needed to replay a game session.
// Sessions are deterministic for a fixed DT, so inputs are all that is stored.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
