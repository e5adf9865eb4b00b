package inject

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/ayusman/bodypilot/internal/command"
)

// Executor runs an injector helper once per key action, bounded by a
// timeout so a wedged helper cannot stall the frame path.
type Executor struct {
	timeout time.Duration
}

// NewExecutor creates an Executor with the given per-call timeout.
func NewExecutor(timeout time.Duration) *Executor {
	return &Executor{timeout: timeout}
}

// Execute sends one request to the helper and parses its response.
func (e *Executor) Execute(inj *Injector, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, inj.Executable)
	cmd.Dir = inj.Path

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	cmd.Stdin = bytes.NewReader(reqJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("injector %s timed out after %s", inj.Manifest.Name, e.timeout)
	}
	if err != nil {
		if s := stderr.String(); s != "" {
			return nil, fmt.Errorf("injector %s failed: %w, stderr: %s", inj.Manifest.Name, err, s)
		}
		return nil, fmt.Errorf("injector %s failed: %w", inj.Manifest.Name, err)
	}

	var resp Response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("parse injector response: %w, stdout: %s", err, stdout.String())
	}
	return &resp, nil
}

// Sender adapts an injector helper to the dispatcher's Sender interface.
type Sender struct {
	injector *Injector
	exec     *Executor
}

// NewSender wraps an injector and executor as a command.Sender.
func NewSender(inj *Injector, exec *Executor) *Sender {
	return &Sender{injector: inj, exec: exec}
}

// SendKey posts one key action to the process through the helper.
func (s *Sender) SendKey(p command.Process, a command.KeyAction) error {
	req := &Request{
		Action:    "key",
		PID:       p.PID,
		Key:       a.Key.String(),
		KeyCode:   uint16(a.Key),
		Direction: a.Dir.String(),
	}

	resp, err := s.exec.Execute(s.injector, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("injector %s: %s", s.injector.Manifest.Name, resp.Error)
	}
	return nil
}
