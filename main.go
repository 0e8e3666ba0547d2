package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	mainContext, mainQuit := context.WithCancelCause(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-signals:
			mainQuit(fmt.Errorf("received %v", sig))
		case <-mainContext.Done():
		}
	}()

	a := newApp(os.Stderr)
	err := a.command().ExecuteContext(mainContext)
	mainQuit(nil)
	if err != nil {
		a.log.WithError(err).Error("newtonfractal failed")
		os.Exit(1)
	}
}
