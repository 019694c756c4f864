package kafka

import "encoding/json"

// MustMarshal panics on marshal failure; only used for types we own, where
// a failure is a programming error.
func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
