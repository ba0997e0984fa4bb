package tui

import "errors"

// ErrAborted is returned when the user interrupts the session (Ctrl-C).
var ErrAborted = errors.New("tui: session aborted")
