// Package apiconnect wires the tripsplit.v1 services into Connect handlers and clients.
package apiconnect

import "encoding/json"

// Codec is the JSON codec registered for every tripsplit.v1 procedure.
// The api package's messages are plain structs, so they go through
// encoding/json and its MarshalJSON hooks on decimal amounts.
type Codec struct{}

// Name implements connect.Codec. Registering under "json" replaces Connect's
// default protojson codec for application/json requests.
func (Codec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements connect.Codec. An empty payload leaves v untouched.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
