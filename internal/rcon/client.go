// Package rcon sends console commands to a running server over the
// Minecraft RCON protocol.
package rcon

import (
	"fmt"

	gorcon "github.com/gorcon/rcon"
)

// Client executes console commands against a server's RCON listener.
type Client struct{}

// NewClient returns an RCON client.
func NewClient() *Client {
	return &Client{}
}

// Execute dials the listener, runs one command and returns the server's
// response.
func (c *Client) Execute(addr, password, command string) (string, error) {
	conn, err := gorcon.Dial(addr, password)
	if err != nil {
		return "", fmt.Errorf("RCON connection failed: %w", err)
	}
	defer conn.Close()

	response, err := conn.Execute(command)
	if err != nil {
		return "", fmt.Errorf("RCON command failed: %w", err)
	}
	return response, nil
}
