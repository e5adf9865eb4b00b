// Package main provides a key injector for Linux desktops.
// It delivers key press and release events to a process's windows via xdotool.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Request represents the input from the injector executor.
type Request struct {
	Action    string `json:"action"`
	PID       int    `json:"pid"`
	Key       string `json:"key"`
	KeyCode   uint16 `json:"keyCode"`
	Direction string `json:"direction"`
}

// Response represents the output to the injector executor.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// keysymMap maps key names used on the wire to X11 keysym names.
// Letters and digits pass through unchanged.
var keysymMap = map[string]string{
	"Left":  "Left",
	"Up":    "Up",
	"Right": "Right",
	"Down":  "Down",
	"Space": "space",
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if req.Action != "key" {
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	if err := handleKey(req); err != nil {
		writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
		return
	}

	writeSuccessResponse()
}

// handleKey sends the key event to every window owned by the target PID.
func handleKey(req Request) error {
	keysym, err := resolveKeysym(req.Key)
	if err != nil {
		return err
	}

	var sub string
	switch req.Direction {
	case "press":
		sub = "keydown"
	case "release":
		sub = "keyup"
	default:
		return fmt.Errorf("unknown direction: %s", req.Direction)
	}

	windows, err := findWindows(req.PID)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		return fmt.Errorf("no windows found for pid %d", req.PID)
	}

	for _, win := range windows {
		cmd := exec.Command("xdotool", sub, "--window", win, keysym)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("xdotool %s failed for window %s: %v: %s", sub, win, err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}

// resolveKeysym converts a wire key name into an X11 keysym.
func resolveKeysym(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	if keysym, ok := keysymMap[key]; ok {
		return keysym, nil
	}
	if len(key) == 1 {
		return strings.ToLower(key), nil
	}
	return "", fmt.Errorf("unsupported key: %s", key)
}

// findWindows returns the window IDs belonging to the given PID.
func findWindows(pid int) ([]string, error) {
	cmd := exec.Command("xdotool", "search", "--pid", strconv.Itoa(pid))
	out, err := cmd.Output()
	if err != nil {
		// xdotool search exits non-zero when nothing matches
		if _, ok := err.(*exec.ExitError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("xdotool search failed: %v", err)
	}

	var windows []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			windows = append(windows, line)
		}
	}
	return windows, nil
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
