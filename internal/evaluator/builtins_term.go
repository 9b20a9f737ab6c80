package evaluator

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// colorLevel caches the detected color support: 0=none, 1=basic(16),
// 256=256colors, 16777216=truecolor
var (
	colorLevelOnce sync.Once
	colorLevelVal  int
)

func detectColorLevel() int {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return 0
	}

	// Not a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return 0
	}

	term := os.Getenv("TERM")
	if term == "dumb" {
		return 0
	}

	// Truecolor detection
	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return 16777216
	}

	// 256-color detection
	if strings.Contains(term, "256color") {
		return 256
	}

	// Basic color support
	return 1
}

func getColorLevel() int {
	colorLevelOnce.Do(func() {
		colorLevelVal = detectColorLevel()
	})
	return colorLevelVal
}

func ansiWrap(code, resetCode, s string) string {
	if getColorLevel() == 0 {
		return s
	}
	return code + s + resetCode
}

var colorCodes = map[string][2]string{
	"black":     {"\033[30m", "\033[39m"},
	"red":       {"\033[31m", "\033[39m"},
	"green":     {"\033[32m", "\033[39m"},
	"yellow":    {"\033[33m", "\033[39m"},
	"blue":      {"\033[34m", "\033[39m"},
	"magenta":   {"\033[35m", "\033[39m"},
	"cyan":      {"\033[36m", "\033[39m"},
	"white":     {"\033[37m", "\033[39m"},
	"gray":      {"\033[90m", "\033[39m"},
	"bold":      {"\033[1m", "\033[22m"},
	"dim":       {"\033[2m", "\033[22m"},
	"underline": {"\033[4m", "\033[24m"},
}

func builtinIsTerminal(e *Evaluator, args ...Object) Object {
	if len(args) != 0 {
		return newError("wrong number of arguments. got=%d, want=0", len(args))
	}
	return nativeBoolToBooleanObject(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func builtinColorize(e *Evaluator, args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	text, ok := args[0].(*String)
	if !ok {
		return newError("argument to `colorize` must be String, got %s", typeName(args[0]))
	}
	color, ok := args[1].(*String)
	if !ok {
		return newError("argument to `colorize` must be String, got %s", typeName(args[1]))
	}
	codes, ok := colorCodes[color.Value]
	if !ok {
		return newError("colorize: unknown color %q", color.Value)
	}
	return &String{Value: ansiWrap(codes[0], codes[1], text.Value)}
}
