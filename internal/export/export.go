// Package export renders analysis and forecast results as downloadable CSV and JSON documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than csv and json.
var ErrUnsupportedFormat = errors.New("unsupported export format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

var nonSlug = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Filename builds a download name such as weather-analysis-Lisbon-Portugal.csv.
func Filename(kind, location string, f Format) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(location, "-"), "-")
	if slug == "" {
		return fmt.Sprintf("weather-%s.%s", kind, f)
	}
	return fmt.Sprintf("weather-%s-%s.%s", kind, slug, f)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// singleLine keeps free text from splitting a preamble line.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeCSV renders preamble lines verbatim followed by CSV records. The
// document carries no trailing newline.
func writeCSV(preamble []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range preamble {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, errors.Wrap(err, "write csv")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal json")
	}
	return out, nil
}
