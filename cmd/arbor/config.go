package main

import (
	"fmt"

	"arbor/category"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML configuration file:
//
//	[grow]
//	threshold = 3
//
//	[categories]
//	integer_category_limit = 7
//	bins_count = 4
type fileConfig struct {
	Grow struct {
		Threshold int `toml:"threshold"`
	} `toml:"grow"`
	Categories struct {
		IntegerCategoryLimit int `toml:"integer_category_limit"`
		BinsCount            int `toml:"bins_count"`
	} `toml:"categories"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if _, err := toml.DecodeFile(path, fc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %v", path, err)
	}
	return fc, nil
}

func (fc *fileConfig) categoryConfig() category.Config {
	return category.Config{
		IntegerCategoryLimit: fc.Categories.IntegerCategoryLimit,
		BinsCount:            fc.Categories.BinsCount,
	}
}
