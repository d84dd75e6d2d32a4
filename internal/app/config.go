package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/uluyol/plottrace/plotting"
)

const formatsDoc = `
CSV FORMAT
	The first row is a header and is skipped. Every other row needs at
	least 5 comma separated fields:
		0	total number of changes applied so far (integer)
		4	average time per change in milliseconds (float)
	Other fields are ignored. Files ending in .gz are decompressed.
	NaN or Inf averages are kept out of the line, leaving a gap.

CONFIG FORMAT
	The -config file is a JSON object; every field is optional:
		{
			"title":       STRING,
			"xLabel":      STRING,
			"yLabel":      STRING,
			"seriesLabel": STRING,
			"widthInch":   FLOAT,  // default: 10
			"heightInch":  FLOAT,  // default: 6
			"dpi":         INT,    // default: 100, window only
			"yTicks":      INT     // default: 20, approximate y-axis tick count
		}
`

func loadStyle(path string) (plotting.Style, error) {
	if path == "" {
		return plotting.DefaultStyle(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plotting.Style{}, errors.Wrap(err, "unable to open config")
	}
	defer f.Close()

	st, err := plotting.DecodeStyle(f)
	if err != nil {
		return plotting.Style{}, errors.Wrap(err, path)
	}
	return st, nil
}
