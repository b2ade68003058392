package chart

import (
	"math"

	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	pieStartAngle = 140.0 // graus, sentido anti-horário a partir do eixo x
	pieExplode    = 0.1   // deslocamento da fatia destacada, em frações do raio
	pieRadius     = 0.4   // raio em frações do menor lado da área de desenho
)

// pie é um plotter de gráfico de pizza; o gonum não fornece um
type pie struct {
	slices []domain.QuarterlyRevenue
}

func newPie(slices []domain.QuarterlyRevenue) *pie {
	return &pie{slices: slices}
}

// DataRange fixa a área de dados para que os eixos ocultos não dependam das fatias
func (pc *pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

func (pc *pie) Plot(c draw.Canvas, plt *plot.Plot) {
	total := 0.0
	for _, s := range pc.slices {
		total += s.Share
	}
	if total <= 0 {
		return
	}

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := vg.Length(pieRadius) * min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y)

	labelStyle := plt.Title.TextStyle
	labelStyle.Font.Size = vg.Points(12)
	labelStyle.XAlign = text.XCenter
	labelStyle.YAlign = text.YCenter

	start := pieStartAngle * math.Pi / 180
	for i, s := range pc.slices {
		sweep := 2 * math.Pi * s.Share / total
		mid := start + sweep/2

		origin := center
		if s.Exploded {
			origin = polar(center, radius*pieExplode, mid)
		}

		var path vg.Path
		path.Move(origin)
		path.Arc(origin, radius, start, sweep)
		path.Close()

		c.SetColor(plotutil.Color(i))
		c.Fill(path)

		c.FillText(labelStyle, polar(origin, radius*1.1, mid), s.Label)
		c.FillText(labelStyle, polar(origin, radius*0.6, mid), utils.FormatPercent(s.Share))

		start += sweep
	}
}

func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}
