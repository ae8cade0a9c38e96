// Package export serializes a gateway assessment into a configuration
// document for downstream systems.
//
// A Document is a snapshot: it copies the answers and paths it is built
// from, and nothing in this package ever writes back to a session or a
// plan. Encoding failures surface as ErrSerialization and leave every
// input untouched.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"gopkg.in/yaml.v3"
)

// ErrSerialization reports that a document could not be encoded.
var ErrSerialization = errors.New("export: serialization failed")

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// validFormats is the set of supported export formats.
var validFormats = map[Format]bool{
	FormatJSON: true,
	FormatYAML: true,
}

// ValidateFormat returns an error if the format is not supported.
func ValidateFormat(f Format) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid export format %q: must be one of: json, yaml", f)
	}
	return nil
}

// ParseFormat converts user input to a Format. Empty input means JSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	}
	f := Format(s)
	if err := ValidateFormat(f); err != nil {
		return "", err
	}
	return f, nil
}

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	return string(f)
}

// MIMEType returns the media type of the encoded document.
func (f Format) MIMEType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// --- Document ---

// Metadata describes when and how the assessment was produced.
type Metadata struct {
	Timestamp               string  `json:"timestamp" yaml:"timestamp"`
	StartTime               string  `json:"start_time" yaml:"start_time"`
	DurationMinutes         float64 `json:"duration_minutes" yaml:"duration_minutes"`
	TotalGatewayQuestions   int     `json:"total_gateway_questions" yaml:"total_gateway_questions"`
	EstimatedTotalQuestions int     `json:"estimated_total_questions" yaml:"estimated_total_questions"`
}

// Summary carries the aggregate plan metrics.
type Summary struct {
	EnabledPaths         int    `json:"enabled_paths" yaml:"enabled_paths"`
	TotalQuestions       int    `json:"total_questions" yaml:"total_questions"`
	EstimatedTimeMinutes string `json:"estimated_time_minutes" yaml:"estimated_time_minutes"`
}

// Document is the exported assessment configuration.
type Document struct {
	Metadata        Metadata          `json:"assessment_metadata" yaml:"assessment_metadata"`
	GatewayAnswers  gateway.Answers   `json:"gateway_answers" yaml:"gateway_answers"`
	AssessmentScope []assessment.Path `json:"assessment_scope" yaml:"assessment_scope"`
	Summary         Summary           `json:"summary" yaml:"summary"`
}

// timestampLayout keeps sub-second precision like an ISO-8601 timestamp.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Build assembles a document. Duration is the unrounded wall-clock time
// between startedAt and exportedAt, in minutes.
func Build(answers gateway.Answers, plan assessment.Plan, startedAt, exportedAt time.Time) Document {
	scope := make([]assessment.Path, len(plan.Paths))
	copy(scope, plan.Paths)

	return Document{
		Metadata: Metadata{
			Timestamp:               exportedAt.Format(timestampLayout),
			StartTime:               startedAt.Format(timestampLayout),
			DurationMinutes:         exportedAt.Sub(startedAt).Minutes(),
			TotalGatewayQuestions:   len(answers),
			EstimatedTotalQuestions: plan.TotalQuestions,
		},
		GatewayAnswers:  answers.Clone(),
		AssessmentScope: scope,
		Summary: Summary{
			EnabledPaths:         plan.EnabledTracks,
			TotalQuestions:       plan.TotalQuestions,
			EstimatedTimeMinutes: plan.EstimatedMinutes.String(),
		},
	}
}

// Encoders are package-level variables so tests can force failures.
var (
	marshalJSON = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	marshalYAML = yaml.Marshal
)

// Encode serializes doc. Any encoder failure is wrapped in ErrSerialization.
func Encode(doc Document, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = marshalJSON(doc)
	case FormatYAML:
		data, err = marshalYAML(doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrSerialization, ValidateFormat(format))
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrSerialization, format, err)
	}
	return data, nil
}

// Filename suggests a name for an export taken at exportedAt.
// Example: itra_assessment_config_20260301_093000.json
func Filename(exportedAt time.Time, format Format) string {
	return fmt.Sprintf("itra_assessment_config_%s.%s", exportedAt.Format("20060102_150405"), format.Extension())
}

// --- Exporter ---

// Artifact is one encoded export, ready to hand to a caller or write out.
type Artifact struct {
	Filename string
	Format   Format
	Data     []byte
	Document Document
}

// Exporter produces artifacts and writes them to Dir.
type Exporter struct {
	Dir    string
	Format Format
}

// NewExporter creates an Exporter. An empty format means JSON.
func NewExporter(dir string, format Format) *Exporter {
	if format == "" {
		format = FormatJSON
	}
	return &Exporter{Dir: dir, Format: format}
}

// Export builds and encodes a document stamped with the current time.
func (e *Exporter) Export(answers gateway.Answers, plan assessment.Plan, startedAt time.Time) (*Artifact, error) {
	exportedAt := timeNow()
	doc := Build(answers, plan, startedAt, exportedAt)

	data, err := Encode(doc, e.Format)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename: Filename(exportedAt, e.Format),
		Format:   e.Format,
		Data:     data,
		Document: doc,
	}, nil
}

// Save writes the artifact into the exporter's directory and returns the
// file path. Nothing is written if the directory cannot be created.
func (e *Exporter) Save(a *Artifact) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(e.Dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
