package cluster

import "errors"

var (
	// ErrRowTooShort is returned when a row has no field at the cluster column.
	ErrRowTooShort = errors.New("row too short")
	// ErrUnmappedLabel is returned when a cluster ID has no new label.
	ErrUnmappedLabel = errors.New("unmapped cluster label")
)
