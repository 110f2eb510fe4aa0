// batch_processor.go: Parallel directory conversion with a worker pool
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/agilira/go-timecache"
)

// FileTask represents one file conversion task.
type FileTask struct {
	InputPath  string
	OutputPath string
	Config     *Config
}

// BatchProcessor converts a directory tree of epee/JSON files in
// parallel using a fixed worker pool, with a fresh converter per file (a
// Converter carries no per-call state beyond its options, so workers
// never contend on one).
type BatchProcessor struct {
	config *Config
	stats  *BatchStats
	mu     sync.RWMutex
}

// BatchStats tracks conversion statistics across the run.
type BatchStats struct {
	FilesProcessed int64
	FilesError     int64
	BytesProcessed int64
	StartTime      time.Time
	EndTime        time.Time
}

// NewBatchProcessor creates a batch processor for the given config.
func NewBatchProcessor(config *Config) (*BatchProcessor, error) {
	if _, err := lookupRecordType(config.Type); err != nil {
		return nil, err
	}
	return &BatchProcessor{
		config: config,
		stats:  &BatchStats{StartTime: timecache.CachedTime()},
	}, nil
}

// ProcessDirectory walks inputDir and converts every matching file into
// outputDir, fanning work out across runtime.NumCPU() workers.
func (bp *BatchProcessor) ProcessDirectory(inputDir, outputDir string) error {
	workers := runtime.NumCPU()
	if bp.config.Verbose {
		fmt.Fprintf(os.Stderr, "Initializing batch processor with %d workers\n", workers)
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	taskChan := make(chan *FileTask, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go bp.worker(taskChan, &wg)
	}

	taskCount := 0
	go func() {
		defer close(taskChan)

		err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != inputDir && !bp.config.Recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if !bp.isConvertibleFile(path) {
				if bp.config.Verbose {
					fmt.Fprintf(os.Stderr, "Skipping %s (not %s)\n", path, bp.sourceExtDesc())
				}
				return nil
			}

			relPath, err := filepath.Rel(inputDir, path)
			if err != nil {
				return err
			}
			outputPath := filepath.Join(outputDir, strings.TrimSuffix(relPath, filepath.Ext(relPath))+bp.outputExt())

			taskChan <- &FileTask{InputPath: path, OutputPath: outputPath, Config: bp.config}
			taskCount++
			if bp.config.Verbose && taskCount%100 == 0 {
				fmt.Fprintf(os.Stderr, "Queued %d tasks...\n", taskCount)
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning directory: %v\n", err)
		}
	}()

	if bp.config.Verbose {
		fmt.Fprintf(os.Stderr, "Processing files with %d workers...\n", workers)
	}

	wg.Wait()
	bp.stats.EndTime = timecache.CachedTime()
	bp.printStats()
	return nil
}

func (bp *BatchProcessor) worker(taskChan <-chan *FileTask, wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range taskChan {
		if err := bp.convertSingleFile(task); err != nil {
			bp.mu.Lock()
			bp.stats.FilesError++
			bp.mu.Unlock()
			if bp.config.Verbose {
				fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", task.InputPath, err)
			}
			continue
		}
		bp.mu.Lock()
		bp.stats.FilesProcessed++
		bp.mu.Unlock()
	}
}

func (bp *BatchProcessor) convertSingleFile(task *FileTask) error {
	input, err := os.Open(task.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %v", err)
	}
	defer input.Close()

	if dir := filepath.Dir(task.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}

	output, err := os.Create(task.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %v", err)
	}
	defer output.Close()

	if info, err := input.Stat(); err == nil {
		bp.mu.Lock()
		bp.stats.BytesProcessed += info.Size()
		bp.mu.Unlock()
	}

	converter := NewConverterWithOptions(bp.config.Type, bp.config.Pretty, bp.config.Encode, false)
	return converter.Convert(input, output)
}

// isConvertibleFile reports whether path is a source file for the
// current conversion direction: ".epee"/".bin" going to JSON, ".json"
// going to epee.
func (bp *BatchProcessor) isConvertibleFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if bp.config.Encode {
		return ext == ".json"
	}
	return ext == ".epee" || ext == ".bin"
}

func (bp *BatchProcessor) outputExt() string {
	if bp.config.Encode {
		return ".epee"
	}
	return ".json"
}

func (bp *BatchProcessor) sourceExtDesc() string {
	if bp.config.Encode {
		return "a .json file"
	}
	return "an .epee/.bin file"
}

// printStats prints final processing statistics.
func (bp *BatchProcessor) printStats() {
	bp.mu.RLock()
	defer bp.mu.RUnlock()

	duration := bp.stats.EndTime.Sub(bp.stats.StartTime)

	fmt.Fprintf(os.Stderr, "\nBatch conversion complete.\n")
	fmt.Fprintf(os.Stderr, "Files processed: %d\n", bp.stats.FilesProcessed)
	fmt.Fprintf(os.Stderr, "Files errored:   %d\n", bp.stats.FilesError)
	fmt.Fprintf(os.Stderr, "Bytes processed: %d (%.2f MB)\n",
		bp.stats.BytesProcessed, float64(bp.stats.BytesProcessed)/(1024*1024))
	fmt.Fprintf(os.Stderr, "Duration: %v\n", duration)

	if duration > 0 {
		filesPerSec := float64(bp.stats.FilesProcessed) / duration.Seconds()
		mbPerSec := float64(bp.stats.BytesProcessed) / (1024 * 1024) / duration.Seconds()
		fmt.Fprintf(os.Stderr, "Throughput: %.2f files/sec, %.2f MB/sec\n", filesPerSec, mbPerSec)
	}
}
