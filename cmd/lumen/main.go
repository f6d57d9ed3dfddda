// Command lumen is the Lumen CLI front end: run/about/version/repl
// subcommands built on github.com/spf13/cobra, each a thin adapter over
// internal/modules and internal/repl. Grounded on the teacher's
// cmd/funxy/main.go (panic-recovery wrapper, file-vs-stdin dispatch,
// -help topic browsing) translated from a bespoke os.Args switch to
// cobra's command tree, per SPEC_FULL.md §6.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/modules"
	"github.com/lumen-lang/lumen/internal/projectconfig"
	"github.com/lumen-lang/lumen/internal/repl"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("LUMEN_DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug in lumen, please report it")
			os.Exit(1)
		}
	}()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lumen",
		Short: "Lumen is a small statically-typed functional language",
	}
	root.AddCommand(newRunCmd(), newVersionCmd(), newAboutCmd(), newReplCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lumen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lumen", Version)
		},
	}
}

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Print information about Lumen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Lumen: a small statically-typed functional language.")
			fmt.Println("Modules are dotted names resolved under the project's source root;")
			fmt.Println("native modules (fs, net.http, json, yaml, math, string, hash, io,")
			fmt.Println("datetime, sqlite) bypass the parser entirely.")
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Lumen session",
		Run: func(cmd *cobra.Command, args []string) {
			r := repl.New(os.Stdout, os.Stdout.Fd())
			r.Run(os.Stdin, os.Stderr)
		},
	}
}

func newRunCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "run [file-or-module]",
		Short: "Run a Lumen file or module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(dir, args)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory containing lumen.toml")
	return cmd
}

func runMain(dir string, args []string) error {
	manifest, err := projectconfig.Load(filepath.Join(dir, projectconfig.ManifestFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(dir, manifest.SourceRoot)
	loader := modules.NewLoader(baseDir, os.Stdout)
	loader.NativeAllow = manifest.Allows

	var target string
	if len(args) == 1 {
		target = args[0]
	} else {
		target = manifest.Entry
	}

	var mod *modules.LoadedModule
	if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
		mod, err = loader.LoadFile(target)
	} else {
		mod, err = loader.Load(target)
	}
	if err != nil {
		reportLoadError(err)
		os.Exit(1)
	}
	_ = mod
	return nil
}

// reportLoadError prints a loader error. Loader errors are already wrapped
// Go errors (github.com/pkg/errors chains), not diagnostics.Error values —
// diagnostics.Render is reserved for checker-stage errors the REPL prints
// directly against the in-memory source it just parsed.
func reportLoadError(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
}
