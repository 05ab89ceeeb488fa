// mergepdf merges a folder of PDFs, some possibly password-protected,
// into one unlocked PDF.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"github.com/missdeer/golib/fsutil"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/missdeer/mergepdf/pkg/codec"
	"github.com/missdeer/mergepdf/pkg/discover"
	"github.com/missdeer/mergepdf/pkg/merge"
)

type options struct {
	Output    string `short:"o" long:"output" default:"merged_unlocked.pdf" description:"Output PDF path"`
	Password  string `long:"password" description:"Common password used by all/most PDFs"`
	NoPrompt  bool   `long:"no-prompt" description:"Do NOT prompt for per-file passwords; skip if the common password fails or is not provided"`
	Recursive bool   `long:"recursive" description:"Recurse into subfolders"`
	Pattern   string `long:"pattern" default:"*.pdf" description:"Filename pattern to include"`
	Order     string `long:"order" choice:"name" choice:"mtime" default:"name" description:"Merge order: natural by filename or by modification time"`
	Args      struct {
		Folder string `positional-arg-name:"folder" description:"Folder containing PDFs to merge"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := codec.Init(); err != nil {
		log.Fatalln(err)
	}

	if exists, err := fsutil.FileExists(opts.Args.Folder); err != nil || !exists {
		fmt.Fprintln(os.Stderr, "Folder not found:", opts.Args.Folder)
		os.Exit(1)
	}

	pdfs := discover.PDFs(opts.Args.Folder, opts.Recursive, opts.Pattern)
	if len(pdfs) == 0 {
		fmt.Println("No PDFs found with the given criteria.")
		os.Exit(1)
	}
	fmt.Printf("Found %d PDF(s). Order: %s. Output: %s\n", len(pdfs), opts.Order, opts.Output)

	interrupt := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		close(interrupt)
	}()

	var prompt merge.PromptFunc
	if !opts.NoPrompt {
		prompt = promptPassword
	}

	result, err := merge.Files(pdfs, merge.Options{
		DefaultPassword: opts.Password,
		Prompt:          prompt,
		Order:           opts.Order,
		Interrupt:       interrupt,
	})
	if err != nil {
		if err == merge.ErrInterrupted {
			os.Exit(1)
		}
		log.Fatalln(err)
	}

	if result.Buffer != nil {
		if err := writeOutput(opts.Output, result.Buffer.Bytes()); err != nil {
			fmt.Printf("\nFailed to write output '%s': %v\n", opts.Output, err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved merged unlocked PDF to: %s\n", opts.Output)
	} else {
		fmt.Println("\nNo PDFs merged; nothing to write.")
	}

	fmt.Printf("\nSummary: merged=%d, skipped=%d (total=%d)\n",
		result.MergedCount, result.SkippedCount, len(pdfs))
}

func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ioutil.WriteFile(path, data, 0644)
}

func promptPassword(name string) (string, error) {
	fmt.Printf("  Password for '%s': ", name)
	password, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}
