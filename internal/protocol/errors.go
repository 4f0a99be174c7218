package protocol

import "errors"

// ErrKind values name the error taxonomy of spec.md §7. They are not meant
// to propagate past a tick boundary; callers bump the matching per-peer
// counter and drop the message.
var (
	ErrTruncated  = errors.New("protocol: truncated bitstream")
	ErrMalformed  = errors.New("protocol: malformed field")
	ErrUnknownID  = errors.New("protocol: unknown (category, id)")
	ErrProtoState = errors.New("protocol: message illegal in current state")
)
