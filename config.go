package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig holds defaults loaded from --config. Pointer fields distinguish
// "unset" from an explicit false or zero.
type fileConfig struct {
	BaseLevel  *int   `yaml:"base_level,omitempty"`
	Links      *bool  `yaml:"links,omitempty"`
	Numbered   *bool  `yaml:"numbered,omitempty"`
	CommonMark *bool  `yaml:"commonmark,omitempty"`
	Output     string `yaml:"output,omitempty"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies every field the file sets onto opts, unless the matching flag
// was given explicitly on the command line.
func (c fileConfig) apply(opts *options, flagChanged func(name string) bool) {
	if c.BaseLevel != nil && !flagChanged("base-level") {
		opts.baseLevel = *c.BaseLevel
	}
	if c.Links != nil && !flagChanged("no-links") {
		opts.noLinks = !*c.Links
	}
	if c.Numbered != nil && !flagChanged("numbered") {
		opts.numbered = *c.Numbered
	}
	if c.CommonMark != nil && !flagChanged("commonmark") {
		opts.commonMark = *c.CommonMark
	}
	if c.Output != "" && !flagChanged("output") {
		opts.outputPath = c.Output
	}
}
