package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// supported formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for files that are neither toml nor yaml
var ErrUnknownFormat = errors.New("unknown config format")

// FormatOf returns the format of the path by its extension
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.Wrap(ErrUnknownFormat, path)
}

// LoadFile parse the config from the file of the path
func LoadFile(path string, v interface{}) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return LoadReader(file, format, v)
}

// LoadString parse the config from the string
func LoadString(data string, format string, v interface{}) error {
	return LoadReader(bytes.NewReader([]byte(data)), format, v)
}

// LoadReader parse the config of the format from the reader
func LoadReader(r io.Reader, format string, v interface{}) error {
	switch format {
	case FormatTOML:
		if _, err := toml.DecodeReader(r, v); err != nil {
			return errors.WithStack(err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	return errors.Wrap(ErrUnknownFormat, format)
}
