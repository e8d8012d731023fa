package main

import (
	"context"
	"fmt"
	"os"

	"arbor"
	"arbor/category"
	"arbor/table"
	treejson "arbor/tree/json"

	"github.com/fatih/color"
)

type rootCmdConfig struct {
	data         string
	samples      string
	output       string
	configFile   string
	selection    string
	goal         int
	threshold    int
	thresholdSet bool
	exclude      []int
	showConfig   bool
	printTable   bool
	printTree    bool
	verbose      bool
}

var errColor = color.New(color.FgRed)

func fail(exitCode int, format string, a ...interface{}) {
	errColor.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
	os.Exit(exitCode)
}

func (rcc *rootCmdConfig) Validate() error {
	if rcc.threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", rcc.threshold)
	}
	return nil
}

func (rcc *rootCmdConfig) run() {
	logger := newLogger(rcc.verbose)
	defer logger.Sync()

	if err := rcc.Validate(); err != nil {
		fail(1, "%v", err)
	}
	params := arbor.Params{Goal: rcc.goal, Threshold: rcc.threshold, Excluded: rcc.exclude}
	if rcc.configFile != "" {
		fc, err := loadFileConfig(rcc.configFile)
		if err != nil {
			fail(1, "%v", err)
		}
		params.Categories = fc.categoryConfig()
		if !rcc.thresholdSet && fc.Grow.Threshold > 0 {
			params.Threshold = fc.Grow.Threshold
		}
	}

	if rcc.data == "" {
		logger.Info("Reading training table from STDIN...")
	} else {
		logger.Infof("Opening %s to read training table...", rcc.data)
	}
	trainingTable, err := table.ReadCSVFromFilePath(rcc.data)
	if err != nil {
		fail(2, "%v", err)
	}
	logger.Infof("Read %d rows and %d columns", trainingTable.Rows(), trainingTable.Cols())

	sel, err := table.ParseSelection(rcc.selection)
	if err != nil {
		fail(3, "%v", err)
	}
	sel = sel.Clamp(trainingTable)

	if rcc.showConfig {
		rcc.printConfig(sel, params)
	}
	if rcc.printTable {
		renderTable(os.Stdout, trainingTable)
	}

	ctx := context.Background()
	logger.Infof("Growing tree over %v with threshold %d...", sel, params.Threshold)
	t, err := arbor.Grow(ctx, trainingTable, sel, params)
	if err != nil {
		fail(4, "growing the tree: %v", err)
	}
	logger.Info("Done")

	if rcc.printTree {
		fmt.Print(t)
	}
	if rcc.output != "" {
		f, err := os.Create(rcc.output)
		if err != nil {
			fail(5, "writing tree to %s: %v", rcc.output, err)
		}
		err = treejson.WriteTree(f, t)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fail(5, "writing tree to %s: %v", rcc.output, err)
		}
		logger.Infof("Wrote tree to %s", rcc.output)
	}

	if rcc.samples != "" {
		logger.Infof("Opening %s to read samples...", rcc.samples)
		samplesTable, err := table.ReadSamplesCSVFromFilePath(rcc.samples)
		if err != nil {
			fail(6, "%v", err)
		}
		classes, err := t.ClassifyTable(ctx, samplesTable)
		if err != nil {
			fail(7, "classifying samples: %v", err)
		}
		renderResults(os.Stdout, t, classes)
	}
}

func (rcc *rootCmdConfig) printConfig(sel table.Selection, params arbor.Params) {
	dataFile := rcc.data
	if dataFile == "" {
		dataFile = "<stdin>"
	}
	samplesFile := rcc.samples
	if samplesFile == "" {
		samplesFile = "(no file provided)"
	}
	cats := params.Categories
	if cats.IntegerCategoryLimit <= 0 {
		cats.IntegerCategoryLimit = category.IntegerCategoryLimit
	}
	if cats.BinsCount < 2 {
		cats.BinsCount = category.BinsCount
	}
	fmt.Printf("Config:\n - data file: %s\n - samples file: %s\n - selection: %v\n - goal: %d\n - threshold: %d\n - excluded columns: %v\n - integer category limit: %d\n - bins: %d\n\n",
		dataFile, samplesFile, sel, params.Goal, params.Threshold, params.Excluded, cats.IntegerCategoryLimit, cats.BinsCount)
}
