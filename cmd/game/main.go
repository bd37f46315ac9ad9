package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"planetoids/internal/audio"
	"planetoids/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Cues: audio.NewSynth(),
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
