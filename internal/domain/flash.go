package domain

// FlashKind classifies feedback messages.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is one translated feedback message stored in the session until the
// next page load. Key is the message key it was translated from.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Key     string    `json:"key"`
	Message string    `json:"message"`
}
