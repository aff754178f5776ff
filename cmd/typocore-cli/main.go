// Command typocore-cli pipes a compared text (stdin or a file) and an
// accurate text through typocore.Analyze and prints the pretty-printed
// JSON annotation.
//
// Usage:
//
//	echo "Halol" | typocore-cli -accurate "Hello"
//	typocore-cli -f compared.txt -accurate-file accurate.txt
//	typocore-cli -f compared.txt -accurate-file accurate.txt -config config.yaml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gotypo/typocore/internal/config"
	"github.com/gotypo/typocore/typocore"
)

func main() {
	file := flag.String("f", "", "file to read the compared text from instead of stdin")
	accurate := flag.String("accurate", "", "accurate text (ignored when -accurate-file is set)")
	accurateFile := flag.String("accurate-file", "", "file to read the accurate text from")
	configFile := flag.String("config", "", "YAML config file (compliance thresholds, letter-case policy)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	must(err)
	compared := string(data)

	accurateText := *accurate
	if *accurateFile != "" {
		accData, err := os.ReadFile(*accurateFile)
		must(err)
		accurateText = string(accData)
	}
	if accurateText == "" {
		fmt.Fprintln(os.Stderr, "typocore-cli: -accurate or -accurate-file is required")
		os.Exit(1)
	}

	cfg := config.Config{}
	if *configFile != "" {
		cfg, err = config.LoadYAMLFile(*configFile)
		must(err)
	}

	result := typocore.Analyze(compared, accurateText, cfg)

	// A Text's Raw characters may contain <, >, or & that the caller
	// piping this output onward wants to see literally, so HTML-escaping
	// stays off; encoded straight to stdout, no intermediate byte slice.
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	must(enc.Encode(result))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "typocore-cli:", err)
		os.Exit(1)
	}
}
