package host

import (
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestDetectWithoutEnv(t *testing.T) {
	t.Setenv(ReadyEnv, "")

	n := Detect()
	if _, ok := n.(SocketNotifier); ok {
		t.Fatalf("Detect() without %s should return Noop, got %T", ReadyEnv, n)
	}
	if err := n.Ready(); err != nil {
		t.Errorf("Noop Ready() should never fail, got %v", err)
	}
}

func TestDetectWithEnv(t *testing.T) {
	t.Setenv(ReadyEnv, "/run/notify.sock")

	n, ok := Detect().(SocketNotifier)
	if !ok {
		t.Fatalf("Detect() with %s should return a SocketNotifier, got %T", ReadyEnv, n)
	}
	if n.Path != "/run/notify.sock" {
		t.Errorf("notifier path = %q, want /run/notify.sock", n.Path)
	}
}

func TestSocketNotifierReady(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "notify.sock")

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: sockPath, Net: "unixgram"})
	if err != nil {
		t.Fatalf("listening on %s: %v", sockPath, err)
	}
	defer conn.Close()

	if err := (SocketNotifier{Path: sockPath}).Ready(); err != nil {
		t.Fatalf("Ready() failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("reading datagram: %v", err)
	}

	if got := string(buf[:n]); got != "READY=1" {
		t.Errorf("received %q, want READY=1", got)
	}
}

func TestSocketNotifierMissingEndpoint(t *testing.T) {
	n := SocketNotifier{Path: filepath.Join(t.TempDir(), "nope.sock")}
	if err := n.Ready(); err == nil {
		t.Error("Ready() against a missing socket should fail")
	}

	n = SocketNotifier{}
	if err := n.Ready(); err == nil {
		t.Error("Ready() with an empty path should fail")
	}
}

func TestNotifyReadySwallowsFailure(t *testing.T) {
	calls := 0
	failing := NotifierFunc(func() error {
		calls++
		return errors.New("no host")
	})

	// Must not panic and must not propagate the error
	NotifyReady(failing, nil)
	NotifyReady(nil, nil)

	if calls != 1 {
		t.Errorf("notifier called %d times, want 1", calls)
	}
}
