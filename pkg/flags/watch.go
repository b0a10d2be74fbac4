package flags

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the oracle whenever its backing file changes. It blocks
// until the stop channel closes, so run it in its own goroutine.
func (o *FileOracle) Watch(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(o.path); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := o.Reload(); err != nil {
				log.Printf("flags: reload failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("flags: watch error: %v", err)
		case <-stop:
			return nil
		}
	}
}
