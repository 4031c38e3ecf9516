package app

import (
	"github.com/willibrandon/vimarcade/internal/storage"
)

// StoreOpenedMsg is sent when the score store is ready. Store is nil when
// saving is disabled.
type StoreOpenedMsg struct {
	Store storage.Store
}

// StoreFailedMsg is sent when the score store could not be opened. The game
// is still playable.
type StoreFailedMsg struct {
	Err error
}
