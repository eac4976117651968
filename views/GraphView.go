package views

import (
	"sort"
	"strings"
	"time"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type GraphController struct{}

func (ctl *GraphController) BarChart(c *gin.Context)   { ctl.chart(c, "bar") }
func (ctl *GraphController) PieChart(c *gin.Context)   { ctl.chart(c, "pie") }
func (ctl *GraphController) LineChart(c *gin.Context)  { ctl.chart(c, "line") }
func (ctl *GraphController) AreaChart(c *gin.Context)  { ctl.chart(c, "area") }
func (ctl *GraphController) PolarChart(c *gin.Context) { ctl.chart(c, "polar") }
func (ctl *GraphController) Table(c *gin.Context)      { ctl.chart(c, "table") }

// chart 单指标多国家的时间序列，最多取末尾10个点
func (ctl *GraphController) chart(c *gin.Context, chartType string) {
	indicator, err := indicatorSrv.GetByKey(c.Query("indicator"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	countries, err := selectedCountries(c.Query("countries"))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	lang := requestedLang(c)
	values, err := valueMap()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var series []gin.H
	var axisTimes []models.TimeValue
	for i := range countries {
		country := countries[i]
		obs, err := countryObservations(&country)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		var selected []models.Observation
		for _, o := range obs {
			if o.IndicatorID == indicator.ID {
				selected = append(selected, o)
			}
		}
		selected, err = filterObservationsByDateRange(selected, from, to)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		full, err := decorateObservations(selected, nil, nil)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		sortByRefTime(full)
		if len(full) > 10 {
			full = full[len(full)-10:]
		}
		translateRegion(&country, lang)
		points := make([]any, 0, len(full))
		for i := range full {
			if f, ok := numericValue(&full[i].Observation, values); ok {
				points = append(points, f)
			} else {
				points = append(points, nil)
			}
			if full[i].RefTime != nil {
				axisTimes = append(axisTimes, *full[i].RefTime)
			}
		}
		series = append(series, gin.H{"name": country.Name, "values": points})
	}
	sort.SliceStable(axisTimes, func(i, j int) bool {
		return timeSortKey(&axisTimes[i]) < timeSortKey(&axisTimes[j])
	})
	axis := make([]string, 0, len(axisTimes))
	seen := make(map[string]bool)
	for i := range axisTimes {
		label := axisTimes[i].TimeString()
		if !seen[label] {
			seen[label] = true
			axis = append(axis, label)
		}
	}
	options := gin.H{
		"chartType":    chartType,
		"xAxis":        gin.H{"title": c.Query("xTag"), "values": axis},
		"yAxis":        gin.H{"title": c.Query("yTag")},
		"series":       series,
		"serieColours": parseColours(c.Query("colours")),
		"valueOnItem":  gin.H{"show": false},
	}
	response.Success(c, options)
}

// ScatterChart 双指标散点，x取第二个指标，y取第一个
func (ctl *GraphController) ScatterChart(c *gin.Context) {
	ids := strings.Split(c.Query("indicator"), ",")
	if len(ids) < 2 {
		response.BadRequest(c, "需要两个指标id")
		return
	}
	first, err := indicatorSrv.GetByKey(ids[0])
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	second, err := indicatorSrv.GetByKey(ids[1])
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	countries, err := selectedCountries(c.Query("countries"))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	lang := requestedLang(c)
	values, err := valueMap()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var series []gin.H
	for i := range countries {
		country := countries[i]
		xs, err := ctl.countrySeries(&country, second.ID, from, to)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		ys, err := ctl.countrySeries(&country, first.ID, from, to)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		if len(xs) == 0 || len(ys) == 0 {
			continue
		}
		n := len(xs)
		if len(ys) < n {
			n = len(ys)
		}
		points := make([][2]float64, 0, n)
		for j := 0; j < n; j++ {
			var x, y float64
			if f, ok := numericValue(&xs[j].Observation, values); ok {
				x = f
			}
			if f, ok := numericValue(&ys[j].Observation, values); ok {
				y = f
			}
			points = append(points, [2]float64{x, y})
		}
		translateRegion(&country, lang)
		series = append(series, gin.H{"name": country.Name, "values": points})
	}
	options := gin.H{
		"chartType":    "scatter",
		"xAxis":        gin.H{"title": c.Query("xTag")},
		"yAxis":        gin.H{"title": c.Query("yTag")},
		"series":       series,
		"serieColours": parseColours(c.Query("colours")),
		"valueOnItem":  gin.H{"show": false},
	}
	response.Success(c, options)
}

func (ctl *GraphController) countrySeries(country *models.Region, indicatorID string, from, to *time.Time) ([]ObservationFull, error) {
	obs, err := countryObservations(country)
	if err != nil {
		return nil, err
	}
	var selected []models.Observation
	for _, o := range obs {
		if o.IndicatorID == indicatorID {
			selected = append(selected, o)
		}
	}
	selected, err = filterObservationsByDateRange(selected, from, to)
	if err != nil {
		return nil, err
	}
	full, err := decorateObservations(selected, nil, nil)
	if err != nil {
		return nil, err
	}
	sortByRefTime(full)
	return full, nil
}

// selectedCountries countries参数，all或iso3逗号表
func selectedCountries(raw string) ([]models.Region, error) {
	all, err := countrySrv.GetAll()
	if err != nil {
		return nil, err
	}
	if raw == "all" || raw == "" {
		return all, nil
	}
	wanted := make(map[string]bool)
	for _, iso3 := range strings.Split(raw, ",") {
		wanted[iso3] = true
	}
	var out []models.Region
	for _, country := range all {
		if wanted[country.Iso3] {
			out = append(out, country)
		}
	}
	return out, nil
}

func parseColours(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, "#"+p)
	}
	return out
}
