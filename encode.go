package macrolens

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// This file contains code to persist a derived dataset as a single JSON file,
// in a way that is still human-readable and git-friendly. The dataset file is
// a convenience so reports and charts can be re-rendered without hitting the
// remote sources again.

// Dataset is the derived monthly frame together with the range it was built for.
type Dataset struct {
	Range Range
	Frame *Frame
}

// jdataset is the JSON representation of a Dataset. NaN is not a valid JSON
// number so missing values are encoded as null.
type jdataset struct {
	From    Date     `json:"from"`
	To      Date     `json:"to"`
	Columns []string `json:"columns"`
	Rows    []jrow   `json:"rows"`
}

type jrow struct {
	On     Date       `json:"on"`
	Values []*float64 `json:"values"`
}

// EncodeDataset writes the dataset as indented JSON.
func EncodeDataset(w io.Writer, ds *Dataset) error {
	jds := jdataset{From: ds.Range.From, To: ds.Range.To, Columns: ds.Frame.Names()}
	for _, on := range ds.Frame.Dates() {
		row := jrow{On: on, Values: make([]*float64, 0, len(jds.Columns))}
		for _, name := range jds.Columns {
			v := ds.Frame.At(name, on)
			if math.IsNaN(v) {
				row.Values = append(row.Values, nil)
			} else {
				w := v
				row.Values = append(row.Values, &w)
			}
		}
		jds.Rows = append(jds.Rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(jds)
}

// DecodeDataset reads a dataset previously written by EncodeDataset.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var jds jdataset
	if err := json.NewDecoder(r).Decode(&jds); err != nil {
		return nil, fmt.Errorf("invalid dataset file: %w", err)
	}

	frame := NewFrame()
	for i, name := range jds.Columns {
		s := NewSeries()
		for _, row := range jds.Rows {
			if i >= len(row.Values) {
				return nil, fmt.Errorf("invalid dataset file: row %s has %d values, want %d", row.On, len(row.Values), len(jds.Columns))
			}
			if v := row.Values[i]; v != nil {
				s.Append(row.On, *v)
			} else {
				s.Append(row.On, math.NaN())
			}
		}
		frame.Add(name, s)
	}
	return &Dataset{Range: NewRange(jds.From, jds.To), Frame: frame}, nil
}

// SaveDataset writes the dataset to a file.
func SaveDataset(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create dataset file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeDataset(f, ds)
}

// LoadDataset reads the dataset from a file.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeDataset(f)
}
