package main

import (
	"detectlang/lang"
	"detectlang/options"
	"detectlang/scan"
	"detectlang/util"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/urfave/cli/v2"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
)

const VERSION = "1.0.0"

const unknown = "-"

type lookupResult struct {
	Input string `json:"input"`
	Found bool   `json:"found"`
	Name  string `json:"name,omitempty"`
	ID    string `json:"id,omitempty"`
}

type languageEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

func lookupFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print results as a json array",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: fmt.Sprintf("exit with %v when any input has no known language", util.ERROR_UNKNOWN_LANGUAGE),
		},
	}, extra...)
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "detect-lang",
		Usage:   "Identify the language of files from their paths or extensions. Files are never opened.",
		Version: VERSION,
		Commands: []*cli.Command{
			{
				Name:      "path",
				Usage:     "identify languages from file paths, using the extension of the last path element",
				ArgsUsage: "<path>...",
				Flags:     lookupFlags(),
				Action: func(ctx *cli.Context) error {
					return lookup(ctx, lang.FromPath)
				},
			},
			{
				Name:      "ext",
				Usage:     "identify languages from bare extensions, given without a leading dot",
				ArgsUsage: "<extension>...",
				Flags: lookupFlags(&cli.BoolFlag{
					Name:  "lowercase",
					Usage: "extensions are already lowercase, match them as given",
				}),
				Action: func(ctx *cli.Context) error {
					if ctx.Bool("lowercase") {
						return lookup(ctx, lang.FromLowercaseExtension)
					}
					return lookup(ctx, lang.FromExtension)
				},
			},
			{
				Name:  "list",
				Usage: "list known languages and their extensions",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print languages as a json array",
					},
				},
				Action: list,
			},
			{
				Name:   "scan",
				Usage:  "count files and lines of code per language for a revision of an existing git clone",
				Flags:  options.ScanFlags,
				Action: scanRevision,
			},
		},
	}
}

func lookup(ctx *cli.Context, identify func(string) (lang.Language, bool)) error {
	inputs := ctx.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("no input given, usage: %v %v", ctx.Command.FullName(), ctx.Command.ArgsUsage)
	}

	results := make([]lookupResult, len(inputs))
	missing := 0
	for i, input := range inputs {
		language, found := identify(input)
		results[i] = lookupResult{Input: input, Found: found, Name: language.Name(), ID: language.ID()}
		if !found {
			missing++
		}
	}

	var err error
	if ctx.Bool("json") {
		err = writeJSON(ctx.App.Writer, results)
	} else {
		err = writeTable(ctx.App.Writer, len(results), func(i int) []string {
			if !results[i].Found {
				return []string{results[i].Input, unknown, unknown}
			}
			return []string{results[i].Input, results[i].Name, results[i].ID}
		})
	}
	if err != nil {
		return err
	}

	if ctx.Bool("strict") && missing > 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_UNKNOWN_LANGUAGE,
			InternalError: fmt.Errorf("%v of %v inputs have no known language", missing, len(inputs)),
		}
	}
	return nil
}

func list(ctx *cli.Context) error {
	languages := lang.Languages()
	entries := make([]languageEntry, len(languages))
	for i, language := range languages {
		entries[i] = languageEntry{ID: language.ID(), Name: language.Name(), Extensions: language.Extensions()}
	}

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, entries)
	}
	return writeTable(ctx.App.Writer, len(entries), func(i int) []string {
		return []string{entries[i].ID, entries[i].Name, strings.Join(entries[i].Extensions, ",")}
	})
}

func scanRevision(ctx *cli.Context) error {
	opts, err := options.ParseOptions(ctx)
	if err != nil {
		return err
	}
	codeStats, err := scan.Scan(opts)
	if err != nil {
		return err
	}
	if len(opts.OutputPath) == 0 {
		return writeJSON(ctx.App.Writer, codeStats)
	}
	err = scan.WriteStats(opts.OutputPath, codeStats)
	if err == nil {
		log.Printf("Completed successfully at %v", opts.OutputPath)
	}
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeTable(w io.Writer, rows int, row func(i int) []string) error {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := 0; i < rows; i++ {
		if _, err := fmt.Fprintln(table, strings.Join(row(i), "\t")); err != nil {
			return err
		}
	}
	return table.Flush()
}

func main() {
	// stdout carries command output
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)

	err := newApp().Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		var withCode *util.ErrorWithCode
		if errors.As(err, &withCode) {
			os.Exit(withCode.StatusCode)
		}
		os.Exit(1)
	}
}
