package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
	"github.com/wcproof/credfetch/proofgen"
	"github.com/wcproof/credfetch/proofgen/fetcher"
)

// printSummary writes a short, human readable account of a run to w.
func printSummary(w io.Writer, rep *proofgen.Report, runErr error, color bool) {
	if w == nil || rep == nil {
		return
	}
	au := aurora.NewAurora(color)
	printOutput(w, au, "head", rep.Head)
	printOutput(w, au, "state", rep.State)
	for _, r := range rep.Scripts {
		status := au.Green("ok")
		if r.ExitCode != 0 || r.Stderr != "" {
			status = au.Red("failed")
		}
		fmt.Fprintf(w, "%-8s %s %s (%s)\n", r.Script.Name, status, r.Script.Path, r.Duration.Round(time.Millisecond))
	}
	if runErr != nil {
		fmt.Fprintf(w, "%s %v\n", au.Red("FAILED"), runErr)
		return
	}
	fmt.Fprintf(w, "%s in %s\n", au.Green("DONE"), rep.Duration.Round(time.Millisecond))
}

func printOutput(w io.Writer, au aurora.Aurora, name string, out *fetcher.Output) {
	if out == nil {
		fmt.Fprintf(w, "%-8s %s\n", name, au.Yellow("skipped"))
		return
	}
	fmt.Fprintf(w, "%-8s %s %s (%s)\n", name, au.Green("saved"), out.Path, humanize.Bytes(uint64(out.Bytes)))
}
