// Package fixture loads and validates declarative expectation fixture
// documents. A document binds an expectation type to one or more datasets,
// each with named columns of raw values and a list of test cases pairing
// input parameters with expected evaluation output.
//
// Documents are authored in YAML or JSON. Loading is strict twice over:
// unknown fields are rejected during decoding, and the decoded document is
// validated against an embedded CUE schema before the engine ever sees it.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is one fixture file: an expectation type plus the datasets it is
// exercised against.
type Document struct {
	// ExpectationType identifies the evaluator under test.
	ExpectationType string `yaml:"expectation_type" json:"expectation_type"`

	// Datasets are evaluated independently; each carries its own tests.
	Datasets []DatasetFixture `yaml:"datasets" json:"datasets"`
}

// DatasetFixture pairs a data block with the test cases that run against it.
// The data block is materialized into a dataset once and shared read-only by
// every test case.
type DatasetFixture struct {
	// Data maps column names to their raw scalar values (including nulls).
	Data map[string][]any `yaml:"data" json:"data"`

	// Tests are the cases to run against this dataset.
	Tests []TestCase `yaml:"tests" json:"tests"`
}

// TestCase is one declarative case: input parameters and expected output.
type TestCase struct {
	// Title names the case in reports.
	Title string `yaml:"title" json:"title"`

	// ExactMatchOut selects full-record comparison. When false, only the
	// fields present in Out are checked against the actual result.
	ExactMatchOut bool `yaml:"exact_match_out" json:"exact_match_out"`

	// In holds the expectation parameters for this case.
	In map[string]any `yaml:"in" json:"in"`

	// Out holds the expected partial result. Recognized keys are "success"
	// and "observed_value"; an absent observed_value means "don't check it".
	Out map[string]any `yaml:"out" json:"out"`
}

// Load reads, schema-validates, and decodes a fixture document.
// YAML and JSON are selected by file extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	isJSON := filepath.Ext(path) == ".json"

	// Decode generically first so the CUE schema sees the document as
	// authored, before struct decoding discards shape information.
	var raw any
	if isJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	if errs := ValidateDocument(raw); len(errs) > 0 {
		return nil, fmt.Errorf("invalid fixture %s: %w", filepath.Base(path), errs[0])
	}

	var doc Document
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fixture: %w", err)
		}
	} else {
		// Strict field validation catches typos like "test:" vs "tests:".
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fixture: %w", err)
		}
	}

	return &doc, nil
}

// FindFiles walks dir and returns all fixture file paths (.yaml, .yml,
// .json), optionally filtered by a glob pattern on the base name without
// extension.
func FindFiles(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			return nil
		}
		if filter != "" {
			name := info.Name()[:len(info.Name())-len(ext)]
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
