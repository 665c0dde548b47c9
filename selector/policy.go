package selector

import (
	"fmt"
	"strings"
)

// InvalidHeaderPolicy decides how a version header that cannot be parsed as
// a date is handled.
type InvalidHeaderPolicy int

const (
	// RejectInvalidHeader treats an unparseable header as the earliest
	// possible date. No version is effective then, so the request fails
	// with ErrVersionNotSupported.
	RejectInvalidHeader InvalidHeaderPolicy = iota

	// LatestOnInvalidHeader treats an unparseable header as absent and
	// starts at the latest version.
	LatestOnInvalidHeader
)

// String implements fmt.Stringer.
func (p InvalidHeaderPolicy) String() string {
	switch p {
	case RejectInvalidHeader:
		return "reject"
	case LatestOnInvalidHeader:
		return "latest"
	default:
		return fmt.Sprintf("InvalidHeaderPolicy(%d)", int(p))
	}
}

// ParseInvalidHeaderPolicy parses "reject" or "latest". An empty string
// selects RejectInvalidHeader.
func ParseInvalidHeaderPolicy(s string) (InvalidHeaderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectInvalidHeader, nil
	case "latest":
		return LatestOnInvalidHeader, nil
	default:
		return 0, fmt.Errorf("selector: unknown invalid header policy %q", s)
	}
}
