package core

import "os"

// OpenSessionLog opens (creating if needed) the sidecar log file a
// --debug run tees its package loggers into via DualLog, so a session
// log persists next to the generated plan script. The returned
// WriteLine appends one already-formatted line; the returned closer
// must be called once the run is done.
func OpenSessionLog(path string) (WriteLine, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, e("opening session log %s: %w", path, err)
	}

	writeLine := func(line string) error {
		if _, err := file.WriteString(line); err != nil {
			return e("writing session log %s: %w", path, err)
		}
		return nil
	}

	closer := func() error {
		if err := file.Close(); err != nil {
			lg.Warningf("closing session log %s: %v", path, err)
			return err
		}
		return nil
	}

	lg.Debugf("Opened session log: %s", path)
	return writeLine, closer, nil
}
