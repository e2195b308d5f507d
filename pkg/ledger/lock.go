package ledger

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another session holds the ledger lock
var ErrLocked = errors.New("ledger is in use by another annotation session")

// Lock takes an advisory lock on <path>.lock for the life of a session.
// The returned func releases it and removes the lock file.
func (lg *Ledger) Lock() (func() error, error) {
	lockPath := lg.path + ".lock"
	fl := flock.New(lockPath)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire ledger lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, lockPath)
	}

	lg.logger.DebugWithFields("Ledger locked", map[string]interface{}{
		"lock": lockPath,
	})
	release := func() error {
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("release ledger lock: %w", err)
		}
		if err := os.Remove(lockPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove ledger lock: %w", err)
		}
		return nil
	}
	return release, nil
}
