package tinylog_test

import (
	"fmt"

	"github.com/trickstertwo/tinylog"
)

func ExampleDispatcher_Add() {
	d, err := tinylog.NewBuilder().
		WithMode(tinylog.ModeConsole).
		WithMinLevel(tinylog.LevelWarn).
		Build()
	if err != nil {
		panic(err)
	}
	d.Add(tinylog.LevelInfo, "net.c", 41, "filtered")
	d.Add(tinylog.LevelError, "net.c", 42, "timeout after %d ms", 500)
	// Output: Error: timeout after 500 ms 	(net.c #42)
}

func ExampleDispatcher_RegisterPrintCallback() {
	d, err := tinylog.NewBuilder().WithMinLevel(tinylog.LevelInfo).Build()
	if err != nil {
		panic(err)
	}
	d.RegisterPrintCallback(func(level tinylog.Level, file string, line int, msg string) {
		fmt.Printf("[%s] %s:%d %s\n", level, file, line, msg)
	})
	d.Add(tinylog.LevelWarn, "uart.c", 12, "rx overrun %d", 3)
	// Output: [Warn] uart.c:12 rx overrun 3
}
