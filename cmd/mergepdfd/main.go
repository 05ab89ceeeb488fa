// mergepdfd serves the upload front end for merging PDFs and
// converting image batches to PDF.
package main

import (
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/missdeer/mergepdf/pkg/codec"
	"github.com/missdeer/mergepdf/pkg/web"
)

type options struct {
	Addr          string `long:"addr" default:":8080" description:"HTTP listen address"`
	MaxConcurrent int    `long:"max-concurrent" default:"4" description:"Maximum concurrent merge/convert requests"`
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

	srv := web.NewServer(opts.Addr, opts.MaxConcurrent)
	log.Println("listening on", opts.Addr)
	log.Fatal(srv.ListenAndServe())
}
