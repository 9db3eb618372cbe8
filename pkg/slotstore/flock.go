package slotstore

import "os"

const lockFileMode = 0o600

// lockFile acquires an exclusive advisory lock on the file at path,
// creating it if it does not exist. The returned function releases the
// lock. Other processes block until the lock is available; goroutines
// within one process still need higher-level serialization.
func lockFile(path string) (unlock func() error, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFileMode)
	if err != nil {
		return nil, err
	}

	if err := flockLock(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := flockUnlock(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
