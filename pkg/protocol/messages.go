package protocol

import (
	"encoding/json"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

// Event kinds carried in FrameEvent payloads.
const (
	// EventLink: the thin client intercepted activation of a navigational
	// link.
	EventLink = "link"

	// EventTransition: the user drove back/forward traversal (popstate or
	// hashchange).
	EventTransition = "transition"
)

// History actions carried in FrameHistory payloads.
const (
	HistoryPush    = "push"
	HistoryReplace = "replace"
)

// Handshake is the first frame on every connection, client to server.
type Handshake struct {
	// URL is the client's full current location (path, query, fragment).
	URL string `json:"url"`

	// HistoryAPI reports pushState/replaceState support.
	HistoryAPI bool `json:"historyApi"`

	// Resume is the session ID to re-attach to, empty for a fresh session.
	Resume string `json:"resume,omitempty"`
}

// Event is a client-reported navigation event.
type Event struct {
	// Kind is EventLink or EventTransition.
	Kind string `json:"kind"`

	// URL is the link target or the post-traversal location.
	URL string `json:"url"`

	// State is the opaque entry payload, present on transitions into
	// entries that carried one.
	State json.RawMessage `json:"state,omitempty"`
}

// HistoryCommand tells the client to mutate its navigation stack.
type HistoryCommand struct {
	// Action is HistoryPush or HistoryReplace.
	Action string `json:"action"`

	// URL is the new visible location.
	URL string `json:"url"`

	// State is the opaque payload to attach to the entry.
	State json.RawMessage `json:"state,omitempty"`
}

// PatchBatch is one renderer flush: the mutations the client applies to the
// mount container, in order.
type PatchBatch struct {
	Patches []WirePatch `json:"patches"`
}

// ErrorReport tells the client something went wrong server-side.
type ErrorReport struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Control is a lightweight session-keeping payload.
type Control struct {
	// Op is "ping", "pong", or "hello".
	Op string `json:"op"`

	// Session carries the session ID on "hello", so the client can ask to
	// resume after a reconnect.
	Session string `json:"session,omitempty"`
}

// EncodeFrame marshals a message into a frame of the given type.
func EncodeFrame(ft FrameType, msg any) (*Frame, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.CodeBadHandshake, errors.CategoryProtocol,
			"protocol: encode payload", err)
	}
	return NewFrame(ft, payload), nil
}

// DecodeHandshake parses a handshake frame payload.
func DecodeHandshake(f *Frame) (*Handshake, error) {
	if f.Type != FrameHandshake {
		return nil, ErrInvalidFrameType
	}
	var h Handshake
	if err := json.Unmarshal(f.Payload, &h); err != nil {
		return nil, errors.Wrap(errors.CodeBadHandshake, errors.CategoryProtocol,
			"protocol: decode handshake", err)
	}
	if h.URL == "" {
		return nil, errors.New(errors.CodeBadHandshake, errors.CategoryProtocol,
			"protocol: handshake missing url")
	}
	return &h, nil
}

// DecodeEvent parses an event frame payload.
func DecodeEvent(f *Frame) (*Event, error) {
	if f.Type != FrameEvent {
		return nil, ErrInvalidFrameType
	}
	var e Event
	if err := json.Unmarshal(f.Payload, &e); err != nil {
		return nil, errors.Wrap(errors.CodeBadHandshake, errors.CategoryProtocol,
			"protocol: decode event", err)
	}
	switch e.Kind {
	case EventLink, EventTransition:
		return &e, nil
	default:
		return nil, errors.New(errors.CodeBadHandshake, errors.CategoryProtocol,
			"protocol: unknown event kind").WithDetailf("kind %q", e.Kind)
	}
}
