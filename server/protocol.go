package main

import "github.com/vmihailenco/msgpack/v5"

// CollisionEvent describes one consequence applied by the collision loop.
// Feed subscribers receive it msgpack-encoded in a binary frame.
type CollisionEvent struct {
	At         int64  `msgpack:"t" json:"t"` // unix ms of the pass
	Kind       string `msgpack:"k" json:"k"`
	ID         string `msgpack:"id" json:"id"`
	ShooterID  string `msgpack:"s,omitempty" json:"s,omitempty"`
	ScoreDelta int    `msgpack:"d,omitempty" json:"d,omitempty"`
	Removed    bool   `msgpack:"r,omitempty" json:"r,omitempty"`
	Err        string `msgpack:"e,omitempty" json:"e,omitempty"`
}

// EncodeEvent encodes an event for the feed
func EncodeEvent(ev CollisionEvent) ([]byte, error) {
	return msgpack.Marshal(&ev)
}

// DecodeEvent decodes a feed frame
func DecodeEvent(data []byte) (CollisionEvent, error) {
	var ev CollisionEvent
	err := msgpack.Unmarshal(data, &ev)
	return ev, err
}

// ConfigMsg is the body of the admin config endpoint
type ConfigMsg struct {
	DisplayNumber int `json:"displayNumber"`
}

// ErrorMsg is returned by HTTP endpoints on failure
type ErrorMsg struct {
	Msg string `json:"msg"`
}
