// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citeconv/internal/format"
	"github.com/pdiddy/citeconv/pkg/types"
)

// JobFile is the on-disk representation of a batch conversion and its
// results. A saved job can be rerun or inspected without retyping the
// citations.
type JobFile struct {
	Job       JobParams  `yaml:"job"`
	Citations []string   `yaml:"citations"`
	Results   []string   `yaml:"results,omitempty"`
	Summary   JobSummary `yaml:"summary,omitempty"`
}

// JobParams stores the style pair and list options of a job.
type JobParams struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Sort     string `yaml:"sort,omitempty"`
	Numbered bool   `yaml:"numbered,omitempty"`
}

// JobSummary stores result statistics and a timestamp.
type JobSummary struct {
	BatchResult `yaml:",inline"`
	Timestamp   time.Time `yaml:"timestamp,omitempty"`
}

// WriteJobFile saves a job and its results to a YAML file.
func WriteJobFile(path string, job *JobFile) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadJobFile loads a job file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var job JobFile
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	return &job, nil
}

// RunJob converts the citations of job and stores the results and summary
// in it. Sorted or numbered jobs are rendered as one bibliography list.
func (c *Converter) RunJob(job *JobFile) {
	from := types.ParseStyle(job.Job.From)
	to := types.ParseStyle(job.Job.To)
	key := format.ParseSortKey(job.Job.Sort)

	if key == format.SortNone && !job.Job.Numbered {
		job.Results, job.Summary.BatchResult = c.BatchConvert(job.Citations, from, to)
	} else {
		job.Results = c.ConvertList(job.Citations, from, to, key, job.Job.Numbered)
		job.Summary.BatchResult = BatchResult{}
		for _, text := range job.Citations {
			if strings.TrimSpace(text) == "" {
				job.Summary.Skipped++
			} else {
				job.Summary.Converted++
			}
		}
	}
	job.Summary.Timestamp = time.Now()
}
