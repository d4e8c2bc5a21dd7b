package domain

import (
	"fmt"
	"strings"
)

// ArrivalStatus is the lifecycle state of a purchase-order arrival.
type ArrivalStatus string

const (
	ArrivalPending   ArrivalStatus = "pending"
	ArrivalArrived   ArrivalStatus = "arrived"
	ArrivalCancelled ArrivalStatus = "cancelled"
)

var arrivalStatuses = map[ArrivalStatus]struct{}{
	ArrivalPending:   {},
	ArrivalArrived:   {},
	ArrivalCancelled: {},
}

// ParseArrivalStatus returns the status for a stored value, ignoring case and
// surrounding spaces.
func ParseArrivalStatus(label string) (ArrivalStatus, error) {
	status := ArrivalStatus(strings.ToLower(strings.TrimSpace(label)))
	if _, ok := arrivalStatuses[status]; !ok {
		return "", fmt.Errorf("unknown arrival status %q", label)
	}

	return status, nil
}

// Scan normalises a status column, so 'Pending' reads back as ArrivalPending.
func (s *ArrivalStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into ArrivalStatus", src)
	}

	status, err := ParseArrivalStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
