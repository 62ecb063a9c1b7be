package network

import (
	"io"

	"github.com/ratel-online/core/protocol"
)

type Client = client

func NewClient(conn interface {
	Write(packet protocol.Packet) error
}, closer io.Closer) *Client {
	return newClient(conn, closer)
}

func (c *client) Send(v interface{}) error {
	return c.send(v)
}

func (c *client) Stop() {
	c.stop()
}
