package server

import (
	"encoding/json"
	stderrors "errors"

	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/protocol"
)

// errDetached is returned by writes against a session whose connection is
// gone. The renderer keeps its tree, so a later resume resyncs the client.
var errDetached = errors.New(errors.CodeAdapterClosed, errors.CategoryHistory,
	"server: session detached")

// wfErr extracts the structured error from err's chain, or nil.
func wfErr(err error) *errors.Error {
	var werr *errors.Error
	if stderrors.As(err, &werr) {
		return werr
	}
	return nil
}

// decodePayload unmarshals a frame payload into v.
func decodePayload(f *protocol.Frame, v any) error {
	return json.Unmarshal(f.Payload, v)
}
