package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/yield"
	"github.com/etnz/yield/rank"
	"github.com/etnz/yield/trend"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// decodeRecords decodes a JSON array, or a stream of JSON values (JSONL), of
// records.
//
// If path is set, it is a JSONPath expression selecting the records inside a
// single JSON document, as returned by market data providers.
func decodeRecords[T any](r io.Reader, path string) ([]T, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if content, err = selectPath(content, path); err != nil {
			return nil, err
		}
	}
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return nil, nil
	}

	var records []T
	if content[0] == '[' {
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, fmt.Errorf("cannot decode records: %w", err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(content))
		for {
			var rec T
			err := dec.Decode(&rec)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("cannot decode record #%d: %w", len(records), err)
			}
			records = append(records, rec)
		}
	}
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("invalid record #%d: %w", i, err)
		}
	}
	return records, nil
}

// selectPath returns the JSON encoding of the value selected by path in content.
func selectPath(content []byte, path string) ([]byte, error) {
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", path, err)
	}
	// a single record is returned as such
	if _, ok := jval.([]any); !ok {
		jval = []any{jval}
	}
	return json.Marshal(jval)
}

// decodeFile decodes the records of a file, "-" or "" is the standard input.
func decodeFile[T any](name, path string) ([]T, error) {
	if name == "" || name == "-" {
		return decodeRecords[T](os.Stdin, path)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := decodeRecords[T](f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}

// decodeObservations decodes dividend observations and sets a stable id on
// those without one.
func decodeObservations(name, path string) ([]yield.Observation, error) {
	obs, err := decodeFile[yield.Observation](name, path)
	if err != nil {
		return nil, err
	}
	for i, o := range obs {
		if o.ID == "" {
			obs[i].ID = observationID(o)
		}
	}
	return obs, nil
}

// observationID derives a name based UUID from the ticker and the ex-date, so
// that the same record always gets the same id.
func observationID(o yield.Observation) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(o.Ticker+"/"+o.ExDate.String())).String()
}

func decodePrices(name, path string) ([]trend.PricePoint, error) {
	return decodeFile[trend.PricePoint](name, path)
}

func decodeEntities(name, path string) ([]rank.Entity, error) {
	return decodeFile[rank.Entity](name, path)
}

// tickerOf returns the ticker named by a file: its base name without extension.
func tickerOf(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
