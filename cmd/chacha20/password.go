package main

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func readPassphrase(prompt string) (string, error) {
	lineReader := bufio.NewReader(os.Stdin)

	// piped stdin: no terminal to quiet, just read the line
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		passphraseBytes, _, err := lineReader.ReadLine()
		if err != nil {
			return "", err
		}
		return string(passphraseBytes), nil
	}

	fmt.Fprint(os.Stderr, prompt)
	termios, err := unix.IoctlGetTermios(syscall.Stdin, unix.TCGETS)
	if err != nil {
		return "", err
	}

	termios.Lflag &^= unix.ECHO

	err = unix.IoctlSetTermios(syscall.Stdin, unix.TCSETS, termios)
	if err != nil {
		return "", err
	}

	defer func() {
		termios.Lflag |= unix.ECHO
		unix.IoctlSetTermios(syscall.Stdin, unix.TCSETS, termios)
		fmt.Println("")
	}()

	passphraseBytes, _, err := lineReader.ReadLine()
	if err != nil {
		return "", err
	}

	return string(passphraseBytes), nil
}
