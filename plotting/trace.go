// Package plotting draws CRDT benchmark traces with gonum/plot.
package plotting

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// NewTracePlot builds a single-line plot of xys, drawn in index order.
// readers.ChangeSeries satisfies plotter.XYer. Points with a NaN or
// infinite coordinate are left out and break the line in two.
func NewTracePlot(xys plotter.XYer, st Style) (*plot.Plot, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = st.Title
	p.X.Label.Text = st.XLabel
	p.Y.Label.Text = st.YLabel
	p.Y.Tick.Marker = MaxNTicks{N: st.YTicks}
	p.BackgroundColor = color.White

	grid, lines, err := traceLayers(xys)
	if err != nil {
		return nil, err
	}
	p.Add(grid)
	for _, l := range lines {
		p.Add(l)
	}
	p.Legend.Add(st.SeriesLabel, lines[0])
	p.Legend.Top = true

	return p, nil
}

// traceLayers returns the background grid and one line per run of
// finite points. There is always at least one line so the legend
// has a thumbnail to show.
func traceLayers(xys plotter.XYer) (*plotter.Grid, []*plotter.Line, error) {
	runs := finiteRuns(xys)
	if len(runs) == 0 {
		runs = []plotter.XYs{nil}
	}

	lines := make([]*plotter.Line, len(runs))
	for i, run := range runs {
		l, err := plotter.NewLine(run)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to build line")
		}
		l.Color = plotutil.Color(0)
		lines[i] = l
	}
	return plotter.NewGrid(), lines, nil
}

func finiteRuns(xys plotter.XYer) []plotter.XYs {
	var (
		runs []plotter.XYs
		cur  plotter.XYs
	)
	for i := 0; i < xys.Len(); i++ {
		x, y := xys.XY(i)
		if plotter.CheckFloats(x, y) != nil {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x, Y: y})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Render rasterizes p at the size and resolution given by st.
func Render(p *plot.Plot, st Style) (image.Image, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(st.width(), st.height()), vgimg.UseDPI(st.DPI))
	p.Draw(draw.New(c))
	return c.Image(), nil
}

// Save writes p to path. The format follows the file extension,
// as supported by gonum/plot (png, svg, pdf, eps, jpg, tif).
func Save(p *plot.Plot, st Style, path string) error {
	if err := st.validate(); err != nil {
		return err
	}
	if err := p.Save(st.width(), st.height(), path); err != nil {
		return errors.Wrapf(err, "unable to save plot to %s", path)
	}
	return nil
}
