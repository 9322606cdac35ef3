package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/knitchart/internal/app"
	"github.com/specialistvlad/knitchart/internal/cli"
	"github.com/specialistvlad/knitchart/internal/hcl"
)

// main is the entrypoint for the knitchart application.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	return runWith(app.Streams{In: os.Stdin, Out: outW, Log: os.Stderr}, args)
}

func runWith(streams app.Streams, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, streams.Out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	knitchartApp := app.NewApp(streams, appConfig, hcl.NewLoader(), hcl.NewExporter())
	return knitchartApp.Run(context.Background())
}
