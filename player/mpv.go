package player

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/youtube"
	"github.com/google/uuid"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	closeTimeout      = 3 * time.Second
)

// MPV implements Handle for one mpv process controlled through its IPC socket.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	mu         sync.Mutex
}

// Options configures how mpv processes are spawned.
type Options struct {
	Binary     string
	YtdlFormat string
	ExtraArgs  []string
	SocketDir  string
}

// Start spawns an idle mpv process with a fresh IPC socket and waits until the socket answers.
func Start(opts Options, title string) (*MPV, error) {
	// unix socket paths are short, so only the first word of the uuid is used
	m := &MPV{
		socketPath: filepath.Join(opts.SocketDir, fmt.Sprintf("deck-%08x.sock", uuid.New().ID())),
		exited:     make(chan struct{}),
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--title=%s", sanitizeTitle(title)),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		"--input-default-bindings=no",
	}
	if opts.YtdlFormat != "" {
		args = append(args, fmt.Sprintf("--ytdl-format=%s", opts.YtdlFormat))
	}
	args = append(args, opts.ExtraArgs...)

	m.cmd = exec.Command(opts.Binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", opts.Binary, err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return nil, fmt.Errorf("mpv socket not ready: %w", err)
	}

	return m, nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// LoadVideoByID replaces the playing file with the watch URL of id.
func (m *MPV) LoadVideoByID(id string) error {
	if _, err := m.sendCommand("loadfile", youtube.WatchURL(id), "replace"); err != nil {
		return fmt.Errorf("load %s: %w", id, err)
	}
	return m.set("pause", false)
}

// SeekTo moves to an absolute position. Without seek-ahead the target is clamped
// to the end of the demuxer cache.
func (m *MPV) SeekTo(seconds float64, allowSeekAhead bool) error {
	if !allowSeekAhead {
		if cached, err := m.getFloatProperty("demuxer-cache-time"); err == nil && seconds > cached {
			seconds = cached
		}
	}
	_, err := m.sendCommand("seek", seconds, "absolute")
	return err
}

func (m *MPV) PlayVideo() error {
	return m.set("pause", false)
}

func (m *MPV) PauseVideo() error {
	return m.set("pause", true)
}

// GetDuration returns 0 while mpv is still resolving the video.
func (m *MPV) GetDuration() (float64, error) {
	d, err := m.getFloatProperty("duration")
	if errors.Is(err, ErrPropertyUnavailable) {
		return 0, nil
	}
	return d, err
}

// GetPlayerState folds mpv's idle, eof, cache and pause flags into a State.
func (m *MPV) GetPlayerState() (State, error) {
	idle, err := m.getBoolProperty("idle-active")
	if err != nil {
		return Unstarted, err
	}
	if idle {
		return Unstarted, nil
	}

	if eof, err := m.getBoolProperty("eof-reached"); err == nil && eof {
		return Ended, nil
	}

	if buffering, err := m.getBoolProperty("paused-for-cache"); err == nil && buffering {
		return Buffering, nil
	}

	paused, err := m.getBoolProperty("pause")
	if err != nil {
		return Unstarted, err
	}
	if paused {
		return Paused, nil
	}
	return Playing, nil
}

// Close quits mpv, killing it if it does not exit in time, and removes the socket.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(closeTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) set(property string, value interface{}) error {
	_, err := m.sendCommand("set_property", property, value)
	return err
}

func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand("get_property", name)
	if err != nil {
		return 0, err
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}
	return val, nil
}

func (m *MPV) getBoolProperty(name string) (bool, error) {
	data, err := m.sendCommand("get_property", name)
	if err != nil {
		return false, err
	}

	val, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property %s: expected bool, got %T", name, data)
	}
	return val, nil
}
