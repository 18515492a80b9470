package cmd

import (
	"bytes"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// runReport is the top-level structure serialized to the optional YAML
// report requested with --report.
type runReport struct {
	Generated string           `yaml:"generated"`
	Transport string           `yaml:"transport"`
	Hosts     []runReportEntry `yaml:"hosts"`
}

// runReportEntry records the outcome of a single host's dispatch.
type runReportEntry struct {
	Host    string `yaml:"host"`
	Error   string `yaml:"error,omitempty"`
	Payload string `yaml:"payload,omitempty"`
}

// newRunReport constructs a report from the collected dispatch results, in
// completion order, with a generated timestamp.
func newRunReport(transport string, results []hostResult) *runReport {
	r := &runReport{
		Generated: time.Now().Format(time.RFC3339),
		Transport: transport,
	}
	for _, res := range results {
		entry := runReportEntry{Host: res.Host, Payload: res.Payload}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			entry.Payload = ""
		}
		r.Hosts = append(r.Hosts, entry)
	}
	return r
}

// writeRunReport serializes the report to YAML and writes it to path.
func writeRunReport(path, transport string, results []hostResult) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newRunReport(transport, results)); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
