package vantageapi

import (
	"encoding/json"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Site is one managed site. Id is the canonical identifier; the internal
// reference is the symbolic alias callers may use instead.
type Site struct {
	Id                string    `json:"id"`
	InternalReference string    `json:"internalReference,omitempty"`
	Name              string    `json:"name,omitempty"`
	Timezone          string    `json:"timezone,omitempty"`
	DeviceCount       int       `json:"deviceCount,omitempty"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Site) String() string {
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
