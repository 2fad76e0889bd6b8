// Package host implements the optional startup handshake with an embedding
// supervisor. When the process runs under a service manager or container
// wrapper that passes NOTIFY_SOCKET, a single sd_notify-style READY=1
// datagram is sent once at startup. Outside such a host the handshake is a
// no-op, and any failure is swallowed: the game must stay playable either
// way.
package host

import (
	"errors"
	"net"
	"os"

	"github.com/charmbracelet/log"
)

// ReadyEnv names the environment variable holding the notification socket.
const ReadyEnv = "NOTIFY_SOCKET"

// readyMessage is the one-time handshake payload.
const readyMessage = "READY=1"

// Notifier signals the embedding host that the game is up.
// The engine never calls this; the platform layer invokes it once.
type Notifier interface {
	Ready() error
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func() error

// Ready implements Notifier.
func (f NotifierFunc) Ready() error {
	return f()
}

// Noop is a Notifier that does nothing and always succeeds.
var Noop Notifier = NotifierFunc(func() error { return nil })

// SocketNotifier sends the ready message to a unix datagram socket.
type SocketNotifier struct {
	Path string
}

// Ready sends READY=1 to the socket.
func (n SocketNotifier) Ready() error {
	if n.Path == "" {
		return errors.New("host: empty notify socket path")
	}

	path := n.Path
	// '@' marks an abstract socket address
	if path[0] == '@' {
		path = "\x00" + path[1:]
	}

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Write([]byte(readyMessage))
	return err
}

// Detect returns the notifier for the current environment: a SocketNotifier
// when NOTIFY_SOCKET is set, otherwise Noop.
func Detect() Notifier {
	path := os.Getenv(ReadyEnv)
	if path == "" {
		return Noop
	}
	return SocketNotifier{Path: path}
}

// NotifyReady performs the one-time handshake and discards any failure.
// A missing or broken host endpoint never affects the game.
func NotifyReady(n Notifier, logger *log.Logger) {
	if n == nil {
		return
	}
	if err := n.Ready(); err != nil && logger != nil {
		logger.Debug("host ready notification failed", "error", err)
	}
}
