// Package dataset loads tabular data into gonum matrices.
//
// The expected format is a CSV file with a header row where the first
// column holds the target value and every remaining column holds a
// feature, one row per sample.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gridge/pkg/errors"
)

// LoadCSVFile はファイルパスからデータセットを読み込む
func LoadCSVFile(path string) (*mat.Dense, *mat.VecDense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	return LoadCSV(file)
}

// LoadCSV はReaderからデータセットを読み込み、特徴量行列とターゲットベクトルを返す。
// 先頭行はヘッダーとして読み飛ばす。1列目がターゲット、残りが特徴量。
func LoadCSV(r io.Reader) (*mat.Dense, *mat.VecDense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is validated below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse CSV")
	}

	if len(records) < 2 {
		return nil, nil, errors.NewModelError("dataset.LoadCSV", "no data rows", errors.ErrEmptyData)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, nil, errors.NewValueError("dataset.LoadCSV",
			"need at least one target column and one feature column")
	}

	rows := records[1:]
	n := len(rows)
	d := len(header) - 1

	X := mat.NewDense(n, d, nil)
	y := mat.NewVecDense(n, nil)

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, nil, errors.NewDimensionError("dataset.LoadCSV", len(header), len(row), 1)
		}

		target, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "row %d: invalid target value %q", i+1, row[0])
		}
		y.SetVec(i, target)

		for j := 1; j < len(row); j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d, column %d: invalid feature value %q", i+1, j, row[j])
			}
			X.Set(i, j-1, v)
		}
	}

	return X, y, nil
}
