// Package export writes normalized record sets as delimited tabular files.
package export

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/filesystem"
	"github.com/xtrex-cli/xtrex/key"
)

// WriteError reports a destination that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write creates path and writes a header row in fieldnames order followed by
// one row per record. An empty rows slice still produces a header-only file.
// The handle is flushed and closed on every exit path.
func Write(path string, fieldnames []string, rows [][]string) (err error) {
	file, err := filesystem.API().Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	writer := csv.NewWriter(file)
	if delimiter := viper.GetString(key.OutputDelimiter); delimiter != "" {
		writer.Comma = []rune(delimiter)[0]
	}

	if err := writer.Write(fieldnames); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
