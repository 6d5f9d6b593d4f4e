package program

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"
)

// exitHandler decides how the process terminates. The first reason for
// termination wins. It is either the first routine failing, a
// termination signal, or all routines completing successfully.
type exitHandler struct {
	once   sync.Once
	cancel context.CancelFunc
	exit   func()
}

func (eh *exitHandler) setExit(exit func()) {
	eh.once.Do(func() {
		eh.exit = exit
		eh.cancel()
	})
}

func (eh *exitHandler) Log(err error) {
	log.Print("Fatal error: ", err)
	eh.setExit(func() { os.Exit(1) })
}

// exitWithSignal raises a termination signal against the current
// process once more, with the default signal handler restored. This
// causes the parent process to observe that we got terminated by the
// signal, as opposed to exiting regularly.
func exitWithSignal(sig os.Signal) {
	if runtime.GOOS == "windows" {
		os.Exit(1)
	}
	signal.Reset(sig)
	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		panic(err)
	}
	if err := process.Signal(sig); err != nil {
		panic(err)
	}

	// Delivery of the signal is asynchronous, and may not happen at
	// all if the signal is ignored by the process group.
	time.Sleep(100 * time.Millisecond)
	os.Exit(1)
}

// RunMain runs the root routine of a program, together with all of
// the routines it spawns. The process terminates:
//
//   - with exit code 0 when all routines complete without error,
//
//   - with exit code 1 as soon as any of the routines fails,
//
//   - by SIGINT or SIGTERM when one of those is received.
//
// Upon termination the context of all remaining routines is canceled,
// and RunMain waits for them to return. Monte Carlo workers only
// observe cancelation between batches, meaning that shutdown is
// delayed by at most the duration of a single batch.
func RunMain(routine Routine) {
	ctx, cancel := context.WithCancel(context.Background())
	eh := &exitHandler{cancel: cancel}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Printf("Received %s signal, waiting for routines to stop", sig)
		eh.setExit(func() { exitWithSignal(sig) })
	}()

	run(ctx, eh, routine)

	eh.setExit(func() { os.Exit(0) })
	eh.exit()
}
