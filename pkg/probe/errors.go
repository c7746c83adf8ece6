package probe

import "errors"

var (
	// ErrStore indicates the session store rejected the token round trip.
	ErrStore = errors.New("probe: session store failed")

	// ErrRequest indicates the profile request could not be sent or read.
	ErrRequest = errors.New("probe: profile request failed")

	// ErrDecode indicates the profile response was not a JSON object within the size limit.
	ErrDecode = errors.New("probe: profile response could not be decoded")
)
