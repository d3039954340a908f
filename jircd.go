// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/VijayEluri/JIRCD/irc"
	"github.com/VijayEluri/JIRCD/irc/logger"
)

// lintLines parses every raw line from in, re-serializes each message and
// checks that the rendering is stable under a second parse. Blank lines are
// skipped, unknown commands and overlong lines are reported as warnings.
func lintLines(in io.Reader, logman *logger.Manager) (parsed, failed int) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		msg := irc.ParseFrom(line)
		if msg == nil {
			logman.Debug("skipping blank line")
			continue
		}
		parsed++

		if len(line) > irc.MaxLength {
			logman.Warning("line exceeds protocol length", fmt.Sprintf("%d bytes", len(line)))
		}
		if msg.Type() == irc.UNKNOWN {
			logman.Warning("unknown command", msg.Command())
		}

		rendered := msg.String()
		reparsed := irc.ParseFrom(rendered)
		if reparsed == nil || reparsed.String() != rendered {
			failed++
			logman.Error("line does not round-trip", line, rendered)
			continue
		}
		logman.Debug("ok", rendered)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("error reading input:", err.Error())
	}
	return
}

func main() {
	usage := `jircd.
Usage:
	jircd lint [--file <filename>] [--verbose]
	jircd commands
	jircd -h | --help
	jircd --version
Options:
	--file <filename>  Read raw IRC lines from a file instead of stdin.
	--verbose          Report blank and well-formed lines too.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	if arguments["commands"].(bool) {
		for _, msgType := range irc.KnownTypes() {
			fmt.Println(msgType.Command())
		}
		return
	}

	level := logger.LogInfo
	if arguments["--verbose"].(bool) {
		level = logger.LogDebug
	}
	logman := logger.NewManager(level)

	in := os.Stdin
	if filename, ok := arguments["--file"].(string); ok {
		file, err := os.Open(filename)
		if err != nil {
			log.Fatal("could not open input file:", err.Error())
		}
		defer file.Close()
		in = file
	}

	parsed, failed := lintLines(in, logman)
	logman.Info(fmt.Sprintf("%d lines parsed, %d failed", parsed, failed))
	if failed > 0 {
		os.Exit(1)
	}
}
