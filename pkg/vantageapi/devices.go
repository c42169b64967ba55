package vantageapi

import (
	"encoding/json"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Device is one adopted device within a site.
type Device struct {
	Id         string          `json:"id"`
	Name       string          `json:"name,omitempty"`
	Model      string          `json:"model,omitempty"`
	DeviceType string          `json:"deviceType,omitempty"`
	MacAddress string          `json:"macAddress,omitempty"`
	IpAddress  string          `json:"ipAddress,omitempty"`
	Status     string          `json:"status,omitempty"`
	Firmware   string          `json:"firmware,omitempty"`
	Config     json.RawMessage `json:"config,omitempty"`
	LastSeen   time.Time       `json:"lastSeen,omitempty"`
}

// NetworkClient is one client seen on a site's network.
type NetworkClient struct {
	Id         string    `json:"id"`
	MacAddress string    `json:"macAddress,omitempty"`
	Hostname   string    `json:"hostname,omitempty"`
	IpAddress  string    `json:"ipAddress,omitempty"`
	Connected  bool      `json:"connected,omitempty"`
	Blocked    bool      `json:"blocked,omitempty"`
	LastSeen   time.Time `json:"lastSeen,omitempty"`
}

// Alert is one alert raised for a site.
type Alert struct {
	Id           string    `json:"id"`
	Severity     string    `json:"severity,omitempty"`
	Message      string    `json:"message,omitempty"`
	Acknowledged bool      `json:"acknowledged,omitempty"`
	RaisedAt     time.Time `json:"raisedAt,omitempty"`
}

// FirmwareUpdate is one available firmware update.
type FirmwareUpdate struct {
	Version      string `json:"version"`
	DeviceModel  string `json:"deviceModel,omitempty"`
	ReleaseNotes string `json:"releaseNotes,omitempty"`
}

// Info is the controller version and licensing information.
type Info struct {
	Version string `json:"version"`
	License string `json:"license,omitempty"`
	Uptime  int64  `json:"uptime,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Device) String() string {
	data, _ := json.MarshalIndent(d, "", "  ")
	return string(data)
}

func (c NetworkClient) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

func (a Alert) String() string {
	data, _ := json.MarshalIndent(a, "", "  ")
	return string(data)
}
