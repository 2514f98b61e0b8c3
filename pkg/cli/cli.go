package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

type App = cli.App
type Command = cli.Command
type Context = cli.Context

type Flag = cli.Flag
type IntFlag = cli.IntFlag
type BoolFlag = cli.BoolFlag
type StringFlag = cli.StringFlag

var stderr io.Writer = os.Stderr

func Error(v ...any) {
	color.New(color.FgRed).Fprintln(stderr, v...)
}

func Fatal(v ...any) {
	Error(v...)
	os.Exit(1)
}
