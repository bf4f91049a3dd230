package session

import (
	"io"
	"sync"
)

// connOutput adapts a raw connection to the entity output contract. Lines go
// out with telnet-style CRLF endings; writes are serialized because combat
// broadcasts and command replies arrive from different goroutines.
type connOutput struct {
	mu   sync.Mutex
	conn io.WriteCloser
}

func newConnOutput(conn io.WriteCloser) *connOutput {
	return &connOutput{conn: conn}
}

func (o *connOutput) WriteLine(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := io.WriteString(o.conn, text+"\r\n")
	return err
}

func (o *connOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conn.Close()
}
