package compare

import (
	"context"
	"sort"
	"strings"

	"github.com/gear6io/tablediff/catalog"
	"github.com/gear6io/tablediff/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// readFailureLine is the single explanatory diff line emitted when a side
// cannot be read; read failures never abort a run.
const readFailureLine = "Error: unable to read one or both files"

// Storage is the I/O collaborator the comparator reads through
type Storage interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
	ListFiles(ctx context.Context, root string, recursive bool, ignorePatterns []string) ([]string, error)
	RelativePath(path, root string) string
	FileSize(path string) int64
}

// Options carry the per-call comparison settings. Nothing here is global
// state; every call receives its own copy.
type Options struct {
	Precision       int
	GenerateCatalog bool
	Recursive       bool
	IgnorePatterns  []string
	Workers         int
	TypeResolution  string
}

// DefaultOptions mirror the CLI defaults
func DefaultOptions() Options {
	return Options{
		Precision:       3,
		GenerateCatalog: true,
		Workers:         1,
	}
}

// Comparator drives single-file and directory-tree comparisons
type Comparator struct {
	store  Storage
	engine *DiffEngine
	logger zerolog.Logger
}

// NewComparator creates a comparator reading through the given storage
func NewComparator(store Storage, logger zerolog.Logger) *Comparator {
	return &Comparator{
		store:  store,
		engine: NewDiffEngine(),
		logger: logger,
	}
}

// CompareFiles compares two files and returns their DiffResult. Read
// failures degrade to an explanatory result rather than an error.
func (c *Comparator) CompareFiles(ctx context.Context, sourcePath, targetPath string, opts Options) *DiffResult {
	return c.comparePair(ctx, pair{
		sourceAbs: sourcePath,
		targetAbs: targetPath,
		sourceRel: sourcePath,
		targetRel: targetPath,
	}, opts)
}

// CompareDirectories compares every file under two directory trees, matching
// by path relative to each root. Results are ordered by the lexically sorted
// union of relative paths; shared paths delegate to file comparison and
// one-sided paths produce SourceOnly/TargetOnly results. Enumeration failure
// of either root fails the whole call.
func (c *Comparator) CompareDirectories(ctx context.Context, sourceDir, targetDir string, opts Options) ([]*DiffResult, error) {
	sourceFiles, err := c.store.ListFiles(ctx, sourceDir, opts.Recursive, opts.IgnorePatterns)
	if err != nil {
		return nil, errors.New(ErrEnumerationFailed, "failed to list source directory", err).
			AddContext("dir", sourceDir)
	}
	targetFiles, err := c.store.ListFiles(ctx, targetDir, opts.Recursive, opts.IgnorePatterns)
	if err != nil {
		return nil, errors.New(ErrEnumerationFailed, "failed to list target directory", err).
			AddContext("dir", targetDir)
	}

	sourceByRel := make(map[string]string, len(sourceFiles))
	for _, path := range sourceFiles {
		sourceByRel[c.store.RelativePath(path, sourceDir)] = path
	}
	targetByRel := make(map[string]string, len(targetFiles))
	for _, path := range targetFiles {
		targetByRel[c.store.RelativePath(path, targetDir)] = path
	}

	keys := make([]string, 0, len(sourceByRel)+len(targetByRel))
	seen := make(map[string]struct{})
	for rel := range sourceByRel {
		keys = append(keys, rel)
		seen[rel] = struct{}{}
	}
	for rel := range targetByRel {
		if _, ok := seen[rel]; !ok {
			keys = append(keys, rel)
		}
	}
	sort.Strings(keys)

	c.logger.Info().
		Str("source_dir", sourceDir).
		Str("target_dir", targetDir).
		Int("source_files", len(sourceFiles)).
		Int("target_files", len(targetFiles)).
		Int("pairs", len(keys)).
		Msg("Comparing directory trees")

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Each worker owns one slot of the preallocated slice, so parallel
	// execution cannot leak into the observable result order.
	results := make([]*DiffResult, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rel := range keys {
		i, rel := i, rel
		g.Go(func() error {
			sourceAbs, inSource := sourceByRel[rel]
			targetAbs, inTarget := targetByRel[rel]
			switch {
			case inSource && inTarget:
				results[i] = c.comparePair(gctx, pair{
					sourceAbs: sourceAbs,
					targetAbs: targetAbs,
					sourceRel: rel,
					targetRel: rel,
				}, opts)
			case inSource:
				results[i] = c.oneSided(gctx, sourceAbs, rel, true, opts)
			default:
				results[i] = c.oneSided(gctx, targetAbs, rel, false, opts)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// pair names one matched file-pair: absolute paths for I/O, relative paths
// for the result record
type pair struct {
	sourceAbs string
	targetAbs string
	sourceRel string
	targetRel string
}

func (c *Comparator) comparePair(ctx context.Context, p pair, opts Options) *DiffResult {
	sourceContent, sourceErr := c.store.ReadLines(ctx, p.sourceAbs)
	targetContent, targetErr := c.store.ReadLines(ctx, p.targetAbs)

	if sourceErr != nil || targetErr != nil {
		c.logger.Warn().
			Str("source", p.sourceAbs).
			Str("target", p.targetAbs).
			AnErr("source_err", sourceErr).
			AnErr("target_err", targetErr).
			Msg("Read failure during comparison")
		return &DiffResult{
			SourcePath:    p.sourceRel,
			TargetPath:    p.targetRel,
			IsIdentical:   false,
			DiffLines:     []string{readFailureLine},
			SourceContent: sourceContent,
			TargetContent: targetContent,
		}
	}

	result := &DiffResult{
		SourcePath:    p.sourceRel,
		TargetPath:    p.targetRel,
		SourceContent: sourceContent,
		TargetContent: targetContent,
	}

	if opts.GenerateCatalog {
		builder := c.builderFor(opts)
		if isTabular(p.sourceAbs, sourceContent) {
			result.SourceCatalog = builder.Build(p.sourceAbs, sourceContent)
		}
		if isTabular(p.targetAbs, targetContent) {
			result.TargetCatalog = builder.Build(p.targetAbs, targetContent)
		}
	}

	normalizedSource := NormalizeContent(sourceContent, opts.Precision)
	normalizedTarget := NormalizeContent(targetContent, opts.Precision)

	identical, diffLines := c.engine.Diff(normalizedSource, normalizedTarget, p.sourceRel, p.targetRel)
	result.IsIdentical = identical
	result.DiffLines = diffLines

	c.logger.Debug().
		Str("source", p.sourceRel).
		Str("target", p.targetRel).
		Bool("identical", identical).
		Msg("Compared file pair")

	return result
}

// oneSided builds the result for a path present in exactly one tree
func (c *Comparator) oneSided(ctx context.Context, absPath, relPath string, inSource bool, opts Options) *DiffResult {
	content, err := c.store.ReadLines(ctx, absPath)
	if err != nil {
		c.logger.Warn().Str("path", absPath).Err(err).Msg("Read failure on one-sided file")
		content = nil
	}

	var cat *catalog.DataCatalog
	if opts.GenerateCatalog && isTabular(absPath, content) {
		cat = c.builderFor(opts).Build(absPath, content)
	}

	result := &DiffResult{IsIdentical: false, DiffLines: []string{}}
	if inSource {
		result.SourcePath = relPath
		result.SourceOnly = true
		result.SourceCatalog = cat
		result.SourceContent = content
	} else {
		result.TargetPath = relPath
		result.TargetOnly = true
		result.TargetCatalog = cat
		result.TargetContent = content
	}
	return result
}

func (c *Comparator) builderFor(opts Options) *catalog.Builder {
	return catalog.NewBuilder(
		catalog.WithResolver(catalog.ResolverFor(opts.TypeResolution)),
		catalog.WithFileSizer(c.store.FileSize),
	)
}

// isTabular classifies content as delimited tabular data: a .csv extension,
// or a first line that a delimiter candidate actually splits.
func isTabular(path string, content []string) bool {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return true
	}
	for _, line := range content {
		if strings.TrimSpace(line) == "" {
			continue
		}
		delim := catalog.DetectDelimiter(line)
		return len(strings.Split(line, delim)) > 1
	}
	return false
}
