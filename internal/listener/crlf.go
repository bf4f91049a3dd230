package listener

import (
	"bytes"
	"io"
)

// crlfConn normalizes inbound line endings on a connection. Telnet sends
// \r\n, SSH without a PTY sends bare \r; the session layer wants plain \n.
// Outbound lines already carry CRLF endings, so writes pass through.
type crlfConn struct {
	rwc io.ReadWriteCloser
}

func newCRLFConn(rwc io.ReadWriteCloser) io.ReadWriteCloser {
	return &crlfConn{rwc: rwc}
}

func (c *crlfConn) Read(p []byte) (int, error) {
	n, err := c.rwc.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

func (c *crlfConn) Write(p []byte) (int, error) {
	return c.rwc.Write(p)
}

func (c *crlfConn) Close() error {
	return c.rwc.Close()
}
