package options

import (
	"detectlang/util"
	"fmt"
	"github.com/urfave/cli/v2"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ScanFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "src",
		Aliases:  []string{"s"},
		Usage:    "path to existing git clone as source directory, may contain no more than .git directory, current git state doesn't affect the command",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "rev",
		Aliases:  []string{"r"},
		Value:    "HEAD",
		Usage:    "commit-ish Revision",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Value:    "",
		Usage:    "output json file, directory will be created if does not exist. stats are printed to stdout when omitted",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of file paths to include, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of file paths to exclude, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "text-only",
		Value:    true,
		Usage:    "skip files with binary extensions (archives, media, compiled objects)",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking path against inclusion patterns",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "max-size",
		Value:    6,
		Usage:    "maximal file size, in MB",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    4,
		Usage:    "number of workers counting lines of code",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "include-noise-dirs",
		Value:    false,
		Usage:    "don't filter out noisy directory names in paths (bin, node_modules etc)",
		Required: false,
	},
}

type Options struct {
	ClonePath          string
	Revision           string
	OutputPath         string
	IncludePatterns    []string
	ExcludePatterns    []string
	VerboseLogging     bool
	TextFilesOnly      bool
	IgnoreCasePatterns bool
	MaxFileSizeBytes   int64
	Workers            int
	IncludeNoiseDirs   bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	var items []string
	for _, item := range strings.Split(flag, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		ClonePath:          c.String("src"),
		Revision:           c.String("rev"),
		OutputPath:         c.String("out"),
		IncludePatterns:    splitListFlag(c.String("include")),
		ExcludePatterns:    splitListFlag(c.String("exclude")),
		VerboseLogging:     c.Bool("verbose"),
		TextFilesOnly:      c.Bool("text-only"),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		MaxFileSizeBytes:   int64(c.Int("max-size")) * 1024 * 1024,
		Workers:            c.Int("workers"),
		IncludeNoiseDirs:   c.Bool("include-noise-dirs"),
	}
	err := Validate(opts)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the clone and output locations and applies defaults
func Validate(opts *Options) error {
	if len(opts.Revision) == 0 {
		opts.Revision = "HEAD"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	err := validateDirectory(opts.ClonePath, false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_PATH,
			InternalError: fmt.Errorf("clone at '%v' is missing or invalid: %v", opts.ClonePath, err),
		}
	}

	err = validateDirectory(path.Join(opts.ClonePath, ".git"), false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_PATH,
			InternalError: fmt.Errorf(".git at '%v' is missing or invalid: %v", opts.ClonePath, err),
		}
	}

	if len(opts.OutputPath) > 0 {
		err = validateDirectory(filepath.Dir(opts.OutputPath), true)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
				InternalError: err,
			}
		}
	}

	if !opts.IncludeNoiseDirs {
		opts.ExcludePatterns = union(util.NoisyDirectoryExclusionPatterns(), opts.ExcludePatterns)
	}

	return nil
}

func union(s1 []string, s2 []string) []string {
	if len(s1) == 0 {
		return s2
	}
	if len(s2) == 0 {
		return s1
	}
	unified := make([]string, 0, len(s1)+len(s2))
	unified = append(unified, s1...)
	return append(unified, s2...)
}
