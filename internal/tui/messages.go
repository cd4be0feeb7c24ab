package tui

import "time"

// storeChangedMsg is sent when the note store changed on its own.
type storeChangedMsg struct{}

type clearStatusMsg struct {
	seq int
}

const statusTTL = 3 * time.Second
