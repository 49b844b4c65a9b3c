package domain

import "net/url"

// PreviewSignal is the preview button carried by a submission.
type PreviewSignal int

const (
	PreviewNone PreviewSignal = iota
	PreviewRequested
	PreviewApproved
	PreviewDeclined
)

// String implements fmt.Stringer.
func (s PreviewSignal) String() string {
	switch s {
	case PreviewRequested:
		return "requested"
	case PreviewApproved:
		return "approved"
	case PreviewDeclined:
		return "declined"
	default:
		return "none"
	}
}

// PreviewSignalFrom reads the signal from the request parameters. When a
// client sends several buttons, approval wins over decline, and decline
// wins over a plain request.
func PreviewSignalFrom(params url.Values) PreviewSignal {
	has := func(key string) bool {
		_, ok := params[key]
		return ok
	}
	switch {
	case has(ParamPreviewApprove):
		return PreviewApproved
	case has(ParamPreviewDecline):
		return PreviewDeclined
	case has(ParamPreview):
		return PreviewRequested
	default:
		return PreviewNone
	}
}

// PreviewStage is the outcome of the preview state machine for one request.
type PreviewStage int

const (
	// StagePersist means a valid submission may be persisted.
	StagePersist PreviewStage = iota + 1
	// StagePreview means the preview page is rendered and nothing is persisted.
	StagePreview
	// StageEditing means the submission is not persisted and the regular
	// form is rendered again (declined preview or no preview button).
	StageEditing
)

// String implements fmt.Stringer.
func (s PreviewStage) String() string {
	switch s {
	case StagePersist:
		return "persist"
	case StagePreview:
		return "preview"
	case StageEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// ReadyToPersist reports whether a valid submission should be saved.
func (s PreviewStage) ReadyToPersist() bool {
	return s == StagePersist
}

// ShowPreview reports whether the preview template replaces the form.
func (s PreviewStage) ShowPreview() bool {
	return s == StagePreview
}

// ResolvePreview is the preview state machine. It holds no state: the stage
// is a pure function of the resource capability and this request's signal.
func ResolvePreview(supportsPreview bool, signal PreviewSignal) PreviewStage {
	if !supportsPreview {
		return StagePersist
	}
	switch signal {
	case PreviewApproved:
		return StagePersist
	case PreviewRequested:
		return StagePreview
	default:
		return StageEditing
	}
}
