// Command oxtester executes an XML build script against the ox
// builder, writing the document to stdout. Scripts drive the builder
// one command per node:
//
//	<script name="demo">
//	  <command op="instruct" version="1.0"/>
//	  <command op="element" name="library" shelves="3"/>
//	  <command op="element" name="book" id="1"/>
//	  <command op="text">Leaves of Grass</command>
//	  <command op="pop"/>
//	  <command op="close"/>
//	</script>
package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/artemshein/ox"
)

func main() {
	var (
		indent  int
		size    int
		out     string
		encName string
	)
	flag.IntVar(&indent, "indent", 2, "indent width in spaces; 0 writes compact output")
	flag.IntVar(&size, "size", 0, "initial output buffer size in bytes")
	flag.StringVar(&out, "out", "", "write to this file instead of stdout")
	flag.StringVar(&encName, "encoding", "", "transcode output (iso-8859-1, windows-1252)")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	var script Script
	if err := xml.NewDecoder(os.Stdin).Decode(&script); err != nil {
		log.WithError(err).Fatal("cannot parse script")
	}

	options := []ox.Option{ox.WithIndent(indent)}
	if size > 0 {
		options = append(options, ox.WithInitialSize(size))
	}

	b, err := openBuilder(out, encName, options...)
	if err != nil {
		log.WithError(err).Fatal("cannot open output")
	}
	if err := script.Run(b); err != nil {
		log.WithField("script", script.Name).WithError(err).Fatal("script failed")
	}
}

func openBuilder(path, encName string, options ...ox.Option) (*ox.Builder, error) {
	if path != "" {
		if encName != "" {
			return nil, fmt.Errorf("cannot combine --out with --encoding")
		}
		return ox.Create(path, options...)
	}
	if encName == "" {
		return ox.Open(os.Stdout, options...), nil
	}
	var enc *encoding.Encoder
	switch strings.ToUpper(encName) {
	case "ISO-8859-1":
		enc = charmap.ISO8859_1.NewEncoder()
	case "WINDOWS-1252":
		enc = charmap.Windows1252.NewEncoder()
	default:
		return nil, fmt.Errorf("unsupported encoding %s", encName)
	}
	return ox.OpenEncoding(os.Stdout, strings.ToLower(encName), enc, options...), nil
}
