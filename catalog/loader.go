// Package catalog loads the static gradient catalog from JSON or YAML records.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/models"
)

//go:embed data/*.json
var embedded embed.FS

// embedded files in catalog order
var embeddedFiles = []string{"data/brands.json", "data/albums.json"}

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the decoder from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Decode reads a list of category records.
func Decode(r io.Reader, format Format) ([]models.CategoryRecord, error) {
	var records []models.CategoryRecord
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("error decoding json catalog -> %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding yaml catalog -> %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return records, nil
}

// Build converts records into a validated catalog. Category tags are
// inherited by every gradient of the category.
func Build(records []models.CategoryRecord) (*colormatch.Catalog, error) {
	var gradients []colormatch.Gradient
	for i, record := range records {
		kind, category, err := classifyRecord(record)
		if err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}

		for _, gr := range record.Gradients {
			colors := make([]colormatch.RGB, 0, len(gr.Colors))
			for _, raw := range gr.Colors {
				c, err := colormatch.ParseColor(raw)
				if err != nil {
					return nil, fmt.Errorf("catalog record %d, gradient %q: %w", i, gr.Name, err)
				}
				colors = append(colors, c)
			}

			gradients = append(gradients, colormatch.Gradient{
				Name:     gr.Name,
				Colors:   colors,
				Category: category,
				Kind:     kind,
				Artist:   record.Artist,
				Tags:     mergeTags(record.Tags, gr.Tags),
			})
		}
	}
	return colormatch.NewCatalog(gradients...)
}

func classifyRecord(record models.CategoryRecord) (colormatch.Kind, string, error) {
	brand := strings.TrimSpace(record.Brand)
	album := strings.TrimSpace(record.Album)
	switch {
	case brand != "" && album != "":
		return "", "", errors.New("record sets both brand and album")
	case brand != "":
		return colormatch.KindBrand, brand, nil
	case album != "":
		return colormatch.KindAlbum, album, nil
	default:
		return "", "", errors.New("record needs a brand or an album")
	}
}

func mergeTags(category, gradient []string) []string {
	if len(category) == 0 && len(gradient) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var tags []string
	for _, t := range append(append([]string{}, category...), gradient...) {
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, t)
	}
	return tags
}

// LoadEmbedded returns the catalog compiled into the binary.
func LoadEmbedded() (*colormatch.Catalog, error) {
	var records []models.CategoryRecord
	for _, name := range embeddedFiles {
		f, err := embedded.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded catalog %s: %w", name, err)
		}
		part, err := Decode(f, JSON)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		records = append(records, part...)
	}
	return Build(records)
}

// LoadFile reads a catalog from a .json, .yaml or .yml file.
func LoadFile(path string) (*colormatch.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f, format)
	if err != nil {
		return nil, err
	}
	return Build(records)
}
