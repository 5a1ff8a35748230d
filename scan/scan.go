package scan

import (
	"detectlang/lang"
	"detectlang/options"
	"detectlang/parallel"
	"detectlang/stats"
	"detectlang/util"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/avast/retry-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem/dotgit"
	"github.com/gobwas/glob"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	TARGET_PERMISSIONS = 0666
	READ_ATTEMPTS      = 3
)

type repositoryScanner struct {
	repository      *git.Repository
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	opts            *options.Options
	queue           *parallel.JobQueue
	stats           *stats.CodeStats
}

// Scan classifies every file of the requested revision by language and returns the tallies
func Scan(opts *options.Options) (*stats.CodeStats, error) {
	var err error

	scanner := &repositoryScanner{
		opts:  opts,
		stats: stats.NewCodeStats(),
	}

	scanner.includePatterns, err = scanner.compileGlobs(opts.IncludePatterns, "include")
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile include patterns '%v': %v", opts.IncludePatterns, err),
		}
	}
	scanner.excludePatterns, err = scanner.compileGlobs(opts.ExcludePatterns, "exclude")
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile exclude patterns '%v': %v", opts.ExcludePatterns, err),
		}
	}

	scanner.repository, err = git.PlainOpen(opts.ClonePath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_GIT,
			InternalError: err,
		}
	}

	revision := opts.Revision
	if len(revision) == 0 {
		revision = "HEAD"
	}

	var commit *object.Commit
	commit, err = scanner.getCommit(revision)
	if err != nil {
		return nil, err
	}
	if commit == nil {
		scanner.stats.Finalize()
		return scanner.stats, nil
	}

	log.Printf("scanning commit '%v' for revision '%v' at clone '%v'", commit.ID(), revision, opts.ClonePath)

	err = scanner.scan(commit)
	if err != nil {
		return nil, err
	}

	scanner.stats.Finalize()
	log.Printf("classified %v of %v files into %v languages", scanner.stats.TotalFileCount-scanner.stats.UnclassifiedFileCount, scanner.stats.TotalFileCount, len(scanner.stats.CountersByLanguage))
	return scanner.stats, nil
}

// WriteStats writes the stats as indented json to outputPath
func WriteStats(outputPath string, codeStats *stats.CodeStats) error {
	data, err := json.MarshalIndent(codeStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	err = os.WriteFile(outputPath, data, TARGET_PERMISSIONS)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
			InternalError: fmt.Errorf("failed to write stats to '%v': %v", outputPath, err),
		}
	}
	return nil
}

func (scanner *repositoryScanner) getCommit(commitish string) (*object.Commit, error) {

	_, err := scanner.repository.Head()
	if err == plumbing.ErrReferenceNotFound {
		log.Printf("repository is detected as empty -- nothing to do")
		return nil, nil
	}
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_HEAD_REF_NOT_FOUND,
			InternalError: fmt.Errorf("failed to resolve HEAD: %v", err),
		}
	}

	hash, err := scanner.repository.ResolveRevision(plumbing.Revision(commitish))
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_REVISION,
			InternalError: fmt.Errorf("failed to get revision '%v': %v", commitish, err),
		}
	}

	return scanner.repository.CommitObject(*hash)
}

func expandPatternsIfNeeded(patterns []string) []string {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*/") {
			patterns = append(patterns, strings.Replace(pattern, "*/", "", 1))
		}
		if strings.HasPrefix(pattern, "**/") {
			patterns = append(patterns, strings.Replace(pattern, "**/", "", 1))
		}
	}
	return patterns
}

func (scanner *repositoryScanner) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	patterns = expandPatternsIfNeeded(patterns)
	scanner.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		if scanner.opts.IgnoreCasePatterns {
			pattern = strings.ToLower(pattern)
		}
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(filePath string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(filePath) {
			return true
		}
	}
	return false
}

func (scanner *repositoryScanner) verboseLog(format string, v ...interface{}) {
	if scanner.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}

// selected applies include and exclude patterns, a path matching an include pattern is never excluded
func (scanner *repositoryScanner) selected(filePath string) bool {
	if scanner.opts.IgnoreCasePatterns {
		filePath = strings.ToLower(filePath)
	}

	if len(scanner.includePatterns) > 0 {
		if !matches(filePath, scanner.includePatterns) {
			scanner.verboseLog("--- skipping '%v' - not matching include patterns", filePath)
			return false
		}
		return true
	}

	if len(scanner.excludePatterns) > 0 && matches(filePath, scanner.excludePatterns) {
		scanner.verboseLog("--- skipping '%v' - matching exclude patterns", filePath)
		return false
	}
	return true
}

func (scanner *repositoryScanner) classifyFile(file *object.File) error {
	filePath := file.Name

	mode := file.Mode

	if !mode.IsFile() || mode.IsMalformed() || scanner.isSymlink(filePath, mode) {
		scanner.verboseLog("--- skipping '%v' - not regular file - mode: %v", filePath, mode)
		return nil
	}

	if scanner.opts.MaxFileSizeBytes > 0 && file.Size >= scanner.opts.MaxFileSizeBytes {
		log.Printf("--- skipping '%v' - file size is too large to scan - %v", filePath, file.Size)
		return nil
	}

	if !scanner.selected(filePath) {
		return nil
	}

	if scanner.opts.TextFilesOnly && util.IsBinaryExt(filepath.Ext(filePath)) {
		scanner.verboseLog("--- skipping '%v' - not a text file", filePath)
		return nil
	}

	language, found := lang.FromPath(filePath)
	if !found {
		scanner.verboseLog("??? '%v' - unknown language", filePath)
		scanner.stats.AddUnclassified(file.Size)
		return nil
	}

	var contents string
	err := retry.Do(
		func() error {
			var contentsErr error
			contents, contentsErr = file.Contents()
			return contentsErr
		},
		retry.Attempts(READ_ATTEMPTS),
	)
	if err != nil {
		return fmt.Errorf("failed to get git file contents for '%v': %v", filePath, err)
	}

	size := file.Size
	return scanner.queue.Add(func() {
		linesOfCode, err := countLinesOfCode([]byte(contents), language.ID())
		if err != nil {
			log.Printf("failed to count lines of '%v': %v", filePath, err)
		}
		scanner.stats.AddFile(language, linesOfCode, size)
		scanner.verboseLog("+++ '%v' - %v - %v lines", filePath, language.Name(), linesOfCode)
	})
}

func (scanner *repositoryScanner) scan(commit *object.Commit) error {

	tree, err := commit.Tree()
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_TREE_NOT_FOUND,
			InternalError: fmt.Errorf("failed to get tree of commit '%v': %v", commit.Hash, err),
		}
	}

	scanner.queue = parallel.CreateJobQueue(scanner.opts.Workers*2, scanner.opts.Workers)
	defer scanner.queue.Close()

	count := 0
	err = tree.Files().ForEach(func(file *object.File) error {
		count++
		return scanner.classifyFile(file)
	})
	_ = scanner.queue.Wait()
	if err != nil {
		if errors.Is(err, dotgit.ErrPackfileNotFound) {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_CLONE_GIT,
				InternalError: err,
			}
		}
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_NO_REVISION,
				InternalError: err,
			}
		}
		return fmt.Errorf("failed to iterate files of %v: %v", commit.Hash, err)
	}
	scanner.verboseLog("iterated %v files for %v", count, commit.Hash)
	return nil
}

func (scanner *repositoryScanner) isSymlink(filePath string, mode filemode.FileMode) bool {
	osMode, err := mode.ToOSFileMode()
	if err != nil {
		scanner.verboseLog("failed to parse os file permissions for '%v': %v", filePath, err)
		return false
	}
	return osMode&os.ModeSymlink != 0
}
