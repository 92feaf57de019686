package ssh

import (
	"bytes"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession satisfies gossh.Session for the methods SessionTty uses.
type fakeSession struct {
	gossh.Session
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (s *fakeSession) Read(b []byte) (int, error)  { return s.in.Read(b) }
func (s *fakeSession) Write(b []byte) (int, error) { return s.out.Write(b) }
func (s *fakeSession) Close() error                { s.closed = true; return nil }

func TestSessionTtyReadWrite(t *testing.T) {
	sess := &fakeSession{in: bytes.NewBufferString("q")}
	tty := NewSessionTty(sess, gossh.Pty{Window: gossh.Window{Width: 80, Height: 50}}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	if err != nil || n != 1 || buf[0] != 'q' {
		t.Errorf("Read = %d, %v, %q", n, err, buf[:n])
	}

	if _, err := tty.Write([]byte("@")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sess.out.String() != "@" {
		t.Errorf("session received %q", sess.out.String())
	}

	if err := tty.Close(); err != nil || !sess.closed {
		t.Error("Close should close the session")
	}
}

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(&fakeSession{}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 50}}, winCh)

	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize: %v", err)
	}
	if ws.Width != 80 || ws.Height != 50 {
		t.Errorf("initial size %dx%d, want 80x50", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })

	winCh <- gossh.Window{Width: 100, Height: 60}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	close(winCh)

	ws, _ = tty.WindowSize()
	if ws.Width != 100 || ws.Height != 60 {
		t.Errorf("resized to %dx%d, want 100x60", ws.Width, ws.Height)
	}
}
