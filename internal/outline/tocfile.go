// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookbinder/pkg/types"
)

// TOCFile is the on-disk representation of a table of contents. The
// operator can dump the embedded table, edit it (say, for a draft with
// different page offsets), and feed it back to rewrite.
type TOCFile struct {
	Book          string               `yaml:"book"`
	Generated     time.Time            `yaml:"generated"`
	MainBodyStart int                  `yaml:"main_body_start"`
	Entries       []types.OutlineEntry `yaml:"entries"`
}

// bookName identifies the edition the embedded table was authored against.
const bookName = "Specifying Systems (book-21-07-04.pdf)"

// WriteTOCFile saves the embedded table of contents to a YAML file.
func WriteTOCFile(path string) error {
	tf := TOCFile{
		Book:          bookName,
		Generated:     time.Now().UTC(),
		MainBodyStart: MainBodyStart(),
		Entries:       BookTOC(),
	}

	data, err := yaml.Marshal(&tf)
	if err != nil {
		return fmt.Errorf("marshaling TOC file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadTOCFile loads a table-of-contents document from disk.
func ReadTOCFile(path string) (*TOCFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TOC file: %w", err)
	}
	var tf TOCFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing TOC file: %w", err)
	}
	if len(tf.Entries) == 0 {
		return nil, fmt.Errorf("TOC file %s contains no entries", path)
	}
	if tf.MainBodyStart < 1 {
		return nil, fmt.Errorf("TOC file %s: main_body_start must be >= 1, got %d", path, tf.MainBodyStart)
	}
	return &tf, nil
}
