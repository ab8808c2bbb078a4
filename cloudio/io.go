// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloudio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported document encodings.
type Formats int32

const (
	JSON Formats = iota
	YAML
	TOML
)

func (f Formats) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// ParseFormat returns the format with the given name,
// which is case insensitive; "yml" is accepted for YAML.
func ParseFormat(name string) (Formats, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return JSON, fmt.Errorf("cloudio: unknown format %q", name)
}

// FormatFromFilename returns the format for the extension
// of the given file name.
func FormatFromFilename(filename string) (Formats, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return JSON, fmt.Errorf("cloudio: no extension in file name %q", filename)
	}
	return ParseFormat(ext)
}

// Write writes the document to w in the given format.
func Write(w io.Writer, doc *Document, f Formats) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("cloudio: cannot write format %v", f)
}

// Read reads a document from r in the given format.
func Read(r io.Reader, f Formats) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(doc)
	case TOML:
		err = toml.NewDecoder(r).Decode(doc)
	default:
		err = fmt.Errorf("cloudio: cannot read format %v", f)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Save writes the document to the given file, in the format
// given by its extension.
func Save(doc *Document, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(fp, doc, f)
}

// Open reads a document from the given file, in the format
// given by its extension.
func Open(filename string) (*Document, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp, f)
}
