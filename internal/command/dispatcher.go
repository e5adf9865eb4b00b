package command

import (
	"log"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// Process identifies one running instance of the target application.
type Process struct {
	PID  int
	Name string
}

// Finder enumerates running processes by executable name.
type Finder interface {
	FindAll(name string) ([]Process, error)
}

// Sender posts one key action to one process. Implementations wrap the
// platform input mechanism; tests substitute a recorder.
type Sender interface {
	SendKey(p Process, a KeyAction) error
}

// PSFinder enumerates processes through the OS process table.
type PSFinder struct{}

// FindAll returns every running process whose executable name matches,
// ignoring case and a trailing ".exe".
func (PSFinder) FindAll(name string) ([]Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	want := normalizeExe(name)
	var matches []Process
	for _, p := range procs {
		if normalizeExe(p.Executable()) == want {
			matches = append(matches, Process{PID: p.Pid(), Name: p.Executable()})
		}
	}
	return matches, nil
}

func normalizeExe(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}

// Dispatcher delivers command sequences to every running instance of the
// target application.
type Dispatcher struct {
	target string
	finder Finder
	sender Sender
}

// NewDispatcher creates a Dispatcher for the given target executable name.
func NewDispatcher(target string, finder Finder, sender Sender) *Dispatcher {
	return &Dispatcher{
		target: target,
		finder: finder,
		sender: sender,
	}
}

// Target returns the executable name the dispatcher delivers to.
func (d *Dispatcher) Target() string {
	return d.target
}

// Dispatch posts the sequence to every matching process, in enumeration
// order, synchronously per action. Delivery is fire-and-forget: zero
// matching processes silently drops the sequence, and a failed post to one
// process never blocks delivery to the others.
func (d *Dispatcher) Dispatch(seq Sequence) error {
	if len(seq) == 0 {
		return nil
	}

	procs, err := d.finder.FindAll(d.target)
	if err != nil {
		return err
	}

	for _, p := range procs {
		for _, a := range seq {
			if err := d.sender.SendKey(p, a); err != nil {
				log.Printf("send key %s %s to pid %d: %v", a.Key, a.Dir, p.PID, err)
				break
			}
		}
	}
	return nil
}
