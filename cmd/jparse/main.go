// Command jparse validates JSON documents from the command line. It is a thin
// wrapper around the jparse package: files are read whole, parsed once, and
// the result of each parse is reported with its timing.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/calumari/jparse"
)

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed).SprintFunc()
)

func main() {
	app := &cli.App{
		Name:  "jparse",
		Usage: "validate JSON documents",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "parse one or more files and report timings",
				ArgsUsage: "FILE...",
				Action:    runCheck,
			},
			{
				Name:      "watch",
				Usage:     "re-validate a file whenever it changes",
				ArgsUsage: "FILE",
				Action:    runWatch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("at least one file is required", 1)
	}

	failed := 0
	for _, path := range c.Args().Slice() {
		if err := checkFile(c.App.Writer, path); err != nil {
			fmt.Fprintf(c.App.Writer, "%s  %s: %v\n", fail("fail"), path, err)
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, c.NArg()), 1)
	}
	return nil
}

func checkFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	_, err = jparse.Parse(string(data))
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	rate := float64(len(data)) / elapsed.Seconds()
	fmt.Fprintf(w, "%s  %s  %s in %s (%s/s)\n",
		pass("ok"), path, humanize.IBytes(uint64(len(data))), elapsed, humanize.IBytes(uint64(rate)))
	return nil
}

// runWatch watches the directory containing the file rather than the file
// itself, so atomic editor saves (temp file + rename) keep being seen.
func runWatch(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one file is required", 1)
	}
	path := c.Args().First()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if err := checkFile(c.App.Writer, path); err != nil {
		fmt.Fprintf(c.App.Writer, "%s  %s: %v\n", fail("fail"), path, err)
	}

	filename := filepath.Base(path)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := checkFile(c.App.Writer, path); err != nil {
				fmt.Fprintf(c.App.Writer, "%s  %s: %v\n", fail("fail"), path, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.App.Writer, "%s  watcher: %v\n", fail("fail"), err)
		case <-c.Context.Done():
			return nil
		}
	}
}
