// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visualization

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/pkg/errors"
)

// CSVHeader names columns of result table file.
var CSVHeader = []string{"experiment_index", "streak_count", "sample_size", "win_probability"}

// WriteCSV writes header and every row of table.
func WriteCSV(w io.Writer, table *simulation.ResultTable) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "cannot write header")
	}
	for _, row := range table.Rows() {
		record := []string{
			strconv.Itoa(row.Experiment),
			strconv.Itoa(row.Streaks),
			strconv.Itoa(row.SampleSize),
			strconv.FormatFloat(row.Probability, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "cannot write row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "cannot flush results")
}

// ReadCSV reads table written by WriteCSV.
func ReadCSV(r io.Reader) (*simulation.ResultTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(CSVHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read header")
	}
	for i, name := range CSVHeader {
		if header[i] != name {
			return nil, errors.Errorf("unexpected column %q, expected %q", header[i], name)
		}
	}

	rows := []simulation.Result{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read line %d", line)
		}
		row, err := parseRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid line %d", line)
		}
		rows = append(rows, row)
	}
	return simulation.NewResultTable(rows...), nil
}

func parseRecord(record []string) (row simulation.Result, err error) {
	if row.Experiment, err = strconv.Atoi(record[0]); err != nil {
		return row, errors.Wrap(err, "experiment_index")
	}
	if row.Streaks, err = strconv.Atoi(record[1]); err != nil {
		return row, errors.Wrap(err, "streak_count")
	}
	if row.SampleSize, err = strconv.Atoi(record[2]); err != nil {
		return row, errors.Wrap(err, "sample_size")
	}
	if row.Probability, err = strconv.ParseFloat(record[3], 64); err != nil {
		return row, errors.Wrap(err, "win_probability")
	}
	return row, nil
}
