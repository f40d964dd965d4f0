// Package interrupt runs registered shutdown handlers, in reverse order of
// registration, when the process receives SIGINT or SIGTERM or when Request is
// called.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mx       sync.Mutex
	handlers []func()
	once     sync.Once
	listen   sync.Once
	// HandlersDone is closed once every handler has run.
	HandlersDone = make(chan struct{})
	requested    = make(chan struct{})
)

// AddHandler registers a function to run on interrupt and starts listening
// for signals if nothing has yet.
func AddHandler(handler func()) {
	mx.Lock()
	handlers = append(handlers, handler)
	mx.Unlock()
	listen.Do(func() { go listener() })
}

// Request triggers the handlers as if a signal had arrived.
func Request() {
	once.Do(func() { close(requested) })
}

// Requested reports whether an interrupt has been triggered.
func Requested() bo {
	select {
	case <-requested:
		return true
	default:
		return false
	}
}

func listener() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	select {
	case s := <-sig:
		log.I.F("received %s, shutting down", s)
		Request()
	case <-requested:
		log.D.Ln("interrupt requested")
	}
	mx.Lock()
	hs := handlers
	mx.Unlock()
	for i := len(hs) - 1; i >= 0; i-- {
		hs[i]()
	}
	close(HandlersDone)
}
