package sdk

import "os"

// FromEnv initializes a client from the environment. PULSE_API_ADDR names
// the server; when unset, the default local address is used.
func FromEnv() *Client {
	addr := os.Getenv("PULSE_API_ADDR")
	if addr == "" {
		addr = "http://localhost:3001"
	}
	return New(addr)
}
