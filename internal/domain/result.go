package domain

// ResultKind tags the Result variant.
type ResultKind int

const (
	ResultRender ResultKind = iota + 1
	ResultRedirect
	ResultJSON
	ResultDownload
)

// String implements fmt.Stringer.
func (k ResultKind) String() string {
	switch k {
	case ResultRender:
		return "render"
	case ResultRedirect:
		return "redirect"
	case ResultJSON:
		return "json"
	case ResultDownload:
		return "download"
	default:
		return "unknown"
	}
}

// Result is the directive every admin action terminates in. Only the fields
// of the tagged variant are meaningful.
type Result struct {
	Kind ResultKind

	// Render.
	Template string
	Data     map[string]any

	// Redirect.
	URL string

	// JSON.
	Payload any
	Status  int

	// Download.
	Filename    string
	ContentType string
	Body        []byte
}

// Render builds a Rendered(template, context) result.
func Render(template string, data map[string]any) Result {
	if data == nil {
		data = map[string]any{}
	}
	return Result{Kind: ResultRender, Template: template, Data: data}
}

// Redirect builds a Redirected(url) result.
func Redirect(url string) Result {
	return Result{Kind: ResultRedirect, URL: url}
}

// JSON builds a JsonReply(payload, status) result.
func JSON(payload any, status int) Result {
	return Result{Kind: ResultJSON, Payload: payload, Status: status}
}

// Download builds an attachment result used by exports.
func Download(filename, contentType string, body []byte) Result {
	return Result{Kind: ResultDownload, Filename: filename, ContentType: contentType, Body: body}
}

// JSON reply markers.
const (
	ReplyOK    = "ok"
	ReplyError = "error"
)

// Reply is the JSON payload answered to XHR-style requests.
type Reply struct {
	Result     string            `json:"result"`
	ObjectID   string            `json:"objectId,omitempty"`
	ObjectName string            `json:"objectName,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}
