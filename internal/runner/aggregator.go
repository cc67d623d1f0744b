package runner

import (
	"fmt"

	"github.com/slicer-infra/extcheck/internal/checksum"
	"github.com/slicer-infra/extcheck/internal/description"
	"github.com/slicer-infra/extcheck/internal/files/filesystem"
	"github.com/slicer-infra/extcheck/internal/logging"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

// Aggregator drives the per-file validation pipeline over an ordered
// list of description file paths and accumulates the run result.
type Aggregator struct {
	runner     *Runner
	fsProvider filesystem.Provider
	calculator checksum.Calculator
	logger     extcheck.Logger
}

// NewAggregator creates an aggregator using the OS filesystem.
// A nil logger disables logging. Panics if runner is nil.
func NewAggregator(runner *Runner, logger extcheck.Logger) *Aggregator {
	return NewAggregatorWithFS(runner, filesystem.NewOSFileSystem(), logger)
}

// NewAggregatorWithFS creates an aggregator with a custom filesystem
// provider. This is primarily useful for testing with in-memory
// filesystems. Panics if runner or fsProvider is nil.
func NewAggregatorWithFS(runner *Runner, fsProvider filesystem.Provider, logger extcheck.Logger) *Aggregator {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Aggregator{
		runner:     runner,
		fsProvider: fsProvider,
		calculator: checksum.New(),
		logger:     logger,
	}
}

// Run validates each description file strictly in the order supplied and
// returns the aggregate result. Check failures are collected per file
// and never stop the run. An I/O failure on any file is unrecoverable
// at this layer: the error propagates, the run aborts, and no aggregate
// is produced.
func (a *Aggregator) Run(paths []string) (*extcheck.RunResult, error) {
	result := &extcheck.RunResult{}

	for _, path := range paths {
		report, err := a.validateFile(path)
		if err != nil {
			return nil, err
		}

		result.Reports = append(result.Reports, report)
		result.FilesChecked++
		result.TotalFailures += len(report.Failures)
	}

	a.logger.Verbose("checked %d description files, found %d errors",
		result.FilesChecked, result.TotalFailures)

	return result, nil
}

// validateFile runs the full pipeline for one file: read, parse, check.
func (a *Aggregator) validateFile(path string) (extcheck.FileReport, error) {
	content, err := a.fsProvider.ReadFile(path)
	if err != nil {
		return extcheck.FileReport{}, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	extension := description.ExtensionName(path)
	meta := description.Parse(content)
	a.logger.Verbose("%s: parsed %d metadata keys", extension, meta.Len())

	failures := a.runner.RunChecks(extension, meta)

	return extcheck.FileReport{
		Path:        path,
		Extension:   extension,
		CatalogID:   description.CatalogID(extension),
		Checksum:    a.calculator.CalculateNormalized(content),
		ChecksumRaw: a.calculator.CalculateRaw(content),
		Failures:    failures,
	}, nil
}
