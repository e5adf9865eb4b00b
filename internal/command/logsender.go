package command

import "log"

// LogSender is a Sender that only logs key actions instead of injecting
// them. It is used when no injector is available so the rest of the
// pipeline keeps working during development.
type LogSender struct{}

// SendKey logs the action and reports success.
func (LogSender) SendKey(p Process, a KeyAction) error {
	log.Printf("Key %s %s -> %s (pid %d)", a.Key, a.Dir, p.Name, p.PID)
	return nil
}
