package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// spinner shows a progress indicator on stderr while a long step runs. It
// stays silent when stderr is not a terminal.
type spinner struct {
	stopChan chan struct{}
	done     chan struct{}
}

func startSpinner(message string) *spinner {
	s := &spinner{}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return s
	}
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					// Clear the line
					fmt.Fprintf(os.Stderr, "\r%*s\r", len(message)+2, "")
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s\x1b[92m %c\x1b[39m", message, r)
					time.Sleep(100 * time.Millisecond)
				}
			}
		}
	}()
	return s
}

func (s *spinner) stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.done
}
