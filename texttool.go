// This file is part of Texttool.
//
// Texttool is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Texttool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Texttool.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jeopardynes/texttool/config"
	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/logger"
	"github.com/jeopardynes/texttool/modalflag"
	"github.com/jeopardynes/texttool/paths"
	"github.com/jeopardynes/texttool/pipeline"
	"github.com/jeopardynes/texttool/prompt"
	"github.com/jeopardynes/texttool/rom"
	"github.com/jeopardynes/texttool/script"
	"github.com/jeopardynes/texttool/statsview"
	"github.com/jeopardynes/texttool/textblock"
	"github.com/jeopardynes/texttool/version"
)

// default filename of an extracted document. the file is placed in the same
// directory as the source image.
const defaultScriptFile = "ExtractedScript.json"

// default filename of the offset configuration, relative to the resource path.
const defaultConfigFile = "config.json"

// exit values.
const (
	exitOK        = 0
	exitParse     = 10
	exitMode      = 20
	exitInterrupt = 30
)

func main() {
	// ctrl-c ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdout)
	}()

	exitVal := exitOK
	select {
	case <-intChan:
		fmt.Println("\r")
		exitVal = exitInterrupt
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. the return value
// should be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("EXTRACT", "INSERT", "SHOW", "TREE", "SETDEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "EXTRACT":
		err = extract(md, output)

	case "INSERT":
		err = insert(md, output)

	case "SHOW":
		err = show(md, output)

	case "TREE":
		err = tree(md, output)

	case "SETDEST":
		err = setdest(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		if kind := errors.Kind(err); kind != "" {
			fmt.Fprintf(output, "* error in %s mode: %s (%s)\n", md, err, kind)
		} else {
			fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		}
		return exitMode
	}

	return exitOK
}

// echoLog sets the debugging log echo.
func echoLog(log bool, output io.Writer) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func extract(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.SetArgsUsage("<source image>")

	configFile := md.AddString("config", paths.ResourcePath(defaultConfigFile), "offset configuration")
	out := md.AddString("out", "", fmt.Sprintf("output document (default %s next to the source image)", defaultScriptFile))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.RequireArgs(1, 1)
	if err != nil {
		return err
	}

	echoLog(*log, output)

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}

	ld := rom.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return err
	}

	blocks, err := pipeline.Extract(rom.NewReader(ld.Data), cfg)
	if err != nil {
		return err
	}

	outFile := *out
	if outFile == "" {
		outFile = filepath.Join(filepath.Dir(ld.Filename), defaultScriptFile)
	}

	err = script.Save(outFile, blocks)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! %d blocks extracted from %s to %s\n", len(blocks), ld.ShortName(), outFile)

	return nil
}

func insert(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.SetArgsUsage("<document>")

	configFile := md.AddString("config", paths.ResourcePath(defaultConfigFile), "offset configuration")
	dest := md.AddString("dest", "", "destination image (default from the offset configuration)")
	atomic := md.AddBool("atomic", false, "write a patched copy of the destination and rename it over the original")
	yes := md.AddBool("yes", false, "do not ask for confirmation before patching the destination")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewStatus()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.RequireArgs(1, 1)
	if err != nil {
		return err
	}

	echoLog(*log, output)

	if *stats {
		statsview.Launch(output)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}

	destFile := *dest
	if destFile == "" {
		destFile = cfg.DestinationImagePath
	}
	if destFile == "" {
		return fmt.Errorf("no destination image in %s and no -dest flag", *configFile)
	}

	// the document is always read from disk so that the most recent edits
	// are inserted
	blocks, err := script.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	if !*yes {
		ok, err := prompt.Confirm(output, fmt.Sprintf("patch %s with %d blocks?", destFile, len(blocks)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(output, "! insertion cancelled")
			return nil
		}
	}

	err = pipeline.Insert(blocks, cfg, destFile, *atomic)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! %d blocks inserted into %s\n", len(blocks), destFile)

	return nil
}

func statsviewStatus() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

func show(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.SetArgsUsage("<document>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.RequireArgs(1, 1)
	if err != nil {
		return err
	}

	blocks, err := script.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	showQuestion := func(n int, q textblock.Question) {
		fmt.Fprintf(output, "    %d. %s\n", n, q.Text)
		fmt.Fprintf(output, "       %s %s\n", textblock.PronounName(q.PronounIndex), q.Answer)
	}

	for i, b := range blocks {
		fmt.Fprintf(output, "block %d\n", i+1)
		for _, t := range b.Topics {
			fmt.Fprintf(output, "  %s\n", t.Name)
			for j, q := range t.Questions {
				showQuestion(j+1, q)
			}
		}
		fmt.Fprintf(output, "  final: %s\n", b.FinalTopic.Name)
		showQuestion(1, b.FinalTopic.Question)
	}

	return nil
}

func tree(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.SetArgsUsage("<source image>")

	dot := md.AddBool("dot", false, "write the tree as a graphviz document")
	answers := md.AddBool("answers", false, "show the answers tree rather than the questions tree")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.RequireArgs(1, 1)
	if err != nil {
		return err
	}

	ld := rom.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return err
	}

	trs, err := pipeline.ReadTrees(rom.NewReader(ld.Data))
	if err != nil {
		return err
	}

	tr := trs.Questions
	if *answers {
		tr = trs.Answers
	}

	if *dot {
		tr.Graph(output)
		return nil
	}

	fmt.Fprintf(output, "%d nodes, %d symbols\n", tr.NodeCount(), len(tr.Symbols()))
	tr.Table(output)

	return nil
}

func setdest(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.SetArgsUsage("<destination image>")

	configFile := md.AddString("config", paths.ResourcePath(defaultConfigFile), "offset configuration")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.RequireArgs(1, 1)
	if err != nil {
		return err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}

	cfg.DestinationImagePath = md.GetArg(0)

	err = cfg.Save(*configFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! destination image set to %s\n", cfg.DestinationImagePath)

	return nil
}
