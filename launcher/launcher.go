// Package launcher starts external emulator processes and supervises
// them while the front-end holds a still frame on screen.
package launcher

import (
	"errors"
	"log"
	"os/exec"
	"time"
)

// WaitResult says why Wait returned.
type WaitResult int

const (
	// ProcessExit means the child exited on its own.
	ProcessExit WaitResult = iota
	// UserInput means the operator asked for termination and the
	// child was killed.
	UserInput
	// Timeout means the child outlived the wait deadline and was
	// killed.
	Timeout
	// Error means there was no child to wait on.
	Error
)

func (r WaitResult) String() string {
	switch r {
	case ProcessExit:
		return "processExit"
	case UserInput:
		return "userInput"
	case Timeout:
		return "timeout"
	default:
		return "error"
	}
}

// tickInterval paces the supervision loop so the caller can keep
// rendering still frames at roughly 30 Hz.
const tickInterval = time.Second / 30

// ProcessManager launches one child process at a time.
type ProcessManager struct {
	cmd  *exec.Cmd
	done chan error

	exited   bool
	exitCode int
}

// New returns an idle process manager.
func New() *ProcessManager {
	return &ProcessManager{}
}

// SimpleLaunch runs a command to completion without supervision.
func (m *ProcessManager) SimpleLaunch(exe string, args []string, cwd string) bool {
	cmd := exec.Command(exe, args...)
	cmd.Dir = cwd
	m.exited = false
	if err := cmd.Run(); err != nil {
		m.finish(err)
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			log.Printf("launcher: %s: %v", exe, err)
			return false
		}
		return true
	}
	m.finish(nil)
	return true
}

// Launch starts a command for supervision by Wait.
func (m *ProcessManager) Launch(exe string, args []string, cwd string) bool {
	cmd := exec.Command(exe, args...)
	cmd.Dir = cwd
	if err := cmd.Start(); err != nil {
		log.Printf("launcher: %s: %v", exe, err)
		return false
	}
	m.cmd = cmd
	m.exited = false
	m.done = make(chan error, 1)
	go func() {
		m.done <- cmd.Wait()
	}()
	return true
}

// Wait supervises the launched child. It ticks onFrameTick at roughly
// 30 Hz so the caller can keep presenting frames, polls userInputCheck
// for operator-initiated termination, and kills the child when
// timeoutSec (0 means no limit) elapses.
func (m *ProcessManager) Wait(timeoutSec float64, userInputCheck func() bool, onFrameTick func()) WaitResult {
	if m.cmd == nil {
		return Error
	}

	var deadline time.Time
	if timeoutSec > 0 {
		deadline = time.Now().Add(time.Duration(timeoutSec * float64(time.Second)))
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-m.done:
			m.finish(err)
			return ProcessExit
		case <-ticker.C:
			if onFrameTick != nil {
				onFrameTick()
			}
			if userInputCheck != nil && userInputCheck() {
				m.Terminate()
				m.finish(<-m.done)
				return UserInput
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				m.Terminate()
				m.finish(<-m.done)
				return Timeout
			}
		}
	}
}

// Terminate kills the supervised child, if any.
func (m *ProcessManager) Terminate() {
	if m.cmd != nil && m.cmd.Process != nil {
		if err := m.cmd.Process.Kill(); err != nil {
			log.Printf("launcher: kill: %v", err)
		}
	}
}

// TryExitCode reports the last child's exit code. The second return
// is false while no child has finished.
func (m *ProcessManager) TryExitCode() (int, bool) {
	if !m.exited {
		return 0, false
	}
	return m.exitCode, true
}

func (m *ProcessManager) finish(err error) {
	m.cmd = nil
	m.exited = true
	m.exitCode = 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			m.exitCode = exitErr.ExitCode()
		} else {
			m.exitCode = -1
		}
	}
}
