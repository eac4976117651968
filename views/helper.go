package views

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/GrainArc/DataAtlas/config"
	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 视图层共享的服务实例
var (
	countrySrv        = services.NewCountryService()
	regionSrv         = services.NewRegionService()
	userSrv           = services.NewUserService()
	organizationSrv   = services.NewOrganizationService()
	datasourceSrv     = services.NewDataSourceService()
	datasetSrv        = services.NewDatasetService()
	indicatorSrv      = services.NewIndicatorService()
	relationshipSrv   = services.NewIndicatorRelationshipService()
	unitSrv           = services.NewMeasurementUnitService()
	observationSrv    = services.NewObservationService()
	valueSrv          = services.NewValueService()
	timeSrv           = services.NewTimeValueService()
	topicSrv          = services.NewTopicService()
	regionTransSrv    = services.NewRegionTranslationService()
	indicatorTransSrv = services.NewIndicatorTranslationService()
	topicTransSrv     = services.NewTopicTranslationService()
)

// worldUnCode 世界区域的联合国编码，区域树的根
const worldUnCode int64 = 1

// isWorldRegion 按联合国编码判定，不依赖代理主键的取值
func isWorldRegion(region *models.Region) bool {
	return region.UnCode != nil && *region.UnCode == worldUnCode
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// requestedLang 客户端请求的语言，缺省用配置里的默认语言
func requestedLang(c *gin.Context) string {
	return c.DefaultQuery("lang", config.DefaultLang)
}

// translateRegion 有译文时用译文覆盖名称
func translateRegion(region *models.Region, lang string) {
	trans, err := regionTransSrv.GetByKey(regionTransKey(region.ID, lang))
	if err != nil {
		return
	}
	region.Name = trans.Name
}

func translateRegions(regions []models.Region, lang string) {
	for i := range regions {
		translateRegion(&regions[i], lang)
	}
}

func translateIndicator(ind *models.Indicator, lang string) {
	trans, err := indicatorTransSrv.GetByKey(indicatorTransKey(ind.ID, lang))
	if err != nil {
		return
	}
	ind.Name = trans.Name
	ind.Description = trans.Description
}

func translateIndicators(inds []models.Indicator, lang string) {
	for i := range inds {
		translateIndicator(&inds[i], lang)
	}
}

// topicView 话题加上译名的输出形态
type topicView struct {
	models.Topic
	TranslationName string `json:"translation_name,omitempty"`
}

func translateTopic(t models.Topic, lang string) topicView {
	out := topicView{Topic: t}
	trans, err := topicTransSrv.GetByKey(topicTransKey(t.ID, lang))
	if err == nil {
		out.TranslationName = trans.Name
	}
	return out
}

// valueMap 取values全量建索引
func valueMap() (map[int64]models.Value, error) {
	all, err := valueSrv.GetAll()
	if err != nil {
		return nil, err
	}
	out := make(map[int64]models.Value, len(all))
	for _, v := range all {
		out[v.ID] = v
	}
	return out, nil
}

// timeMap 取times全量建索引
func timeMap() (map[int64]models.TimeValue, error) {
	all, err := timeSrv.GetAll()
	if err != nil {
		return nil, err
	}
	out := make(map[int64]models.TimeValue, len(all))
	for _, t := range all {
		out[t.ID] = t
	}
	return out, nil
}

// countryObservations 观测按国家代理id关联
func countryObservations(country *models.Region) ([]models.Observation, error) {
	all, err := observationSrv.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Observation
	for _, obs := range all {
		if obs.RegionID != nil && *obs.RegionID == country.ID {
			out = append(out, obs)
		}
	}
	return out, nil
}

func observationsOfIndicator(indicatorID string) ([]models.Observation, error) {
	all, err := observationSrv.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Observation
	for _, obs := range all {
		if obs.IndicatorID == indicatorID {
			out = append(out, obs)
		}
	}
	return out, nil
}

// parseRangeDates from/to参数解析，格式YYYYMMDD，都缺省时不过滤
func parseRangeDates(c *gin.Context) (from, to *time.Time, err error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return nil, nil, nil
	}
	f, err := time.Parse("20060102", fromStr)
	if err != nil {
		return nil, nil, err
	}
	t, err := time.Parse("20060102", toStr)
	if err != nil {
		return nil, nil, err
	}
	return &f, &t, nil
}

// timeInRange 三种时间形态各自的区间判定
// 瞬时取闭区间包含，区间取重叠，年区间按年号落在[from,to]内
func timeInRange(t *models.TimeValue, from, to time.Time) bool {
	switch t.Type {
	case models.TimeTypeInstant:
		if t.Timestamp == nil {
			return false
		}
		return !t.Timestamp.Before(from) && !t.Timestamp.After(to)
	case models.TimeTypeInterval:
		if t.StartDate == nil || t.EndDate == nil {
			return false
		}
		start := time.Time(*t.StartDate)
		end := time.Time(*t.EndDate)
		return !start.After(to) && !end.Before(from)
	case models.TimeTypeYearInterval:
		if t.Year == nil {
			return false
		}
		return from.Year() <= *t.Year && *t.Year <= to.Year()
	}
	return false
}

// filterObservationsByDateRange 按时间维过滤观测，无界时原样返回
func filterObservationsByDateRange(obs []models.Observation, from, to *time.Time) ([]models.Observation, error) {
	if from == nil || to == nil {
		return obs, nil
	}
	times, err := timeMap()
	if err != nil {
		return nil, err
	}
	var out []models.Observation
	for _, o := range obs {
		if o.RefTimeID == nil {
			continue
		}
		t, ok := times[*o.RefTimeID]
		if !ok {
			continue
		}
		if timeInRange(&t, *from, *to) {
			out = append(out, o)
		}
	}
	return out, nil
}

// numericValue 观测数值，缺失或非数值时不参与计算
func numericValue(obs *models.Observation, values map[int64]models.Value) (float64, bool) {
	if obs.ValueID == nil {
		return 0, false
	}
	v, ok := values[*obs.ValueID]
	if !ok || v.Value == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(*v.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// filterByRegionAndTop 一个指标的top榜，region=global或un_code，top默认10
// 返回榜上观测和各自所属的国家，一一对应
func filterByRegionAndTop(c *gin.Context, indicatorID string) ([]models.Region, []models.Observation, error) {
	topN := 10
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, err
		}
		topN = n
	}
	observations, err := observationsOfIndicator(indicatorID)
	if err != nil {
		return nil, nil, err
	}
	if raw := c.Query("region"); raw != "" && raw != "global" {
		regionCode, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, err
		}
		region, err := regionSrv.GetByKey(regionCode)
		if err != nil {
			return nil, nil, err
		}
		countries, err := countrySrv.GetAll()
		if err != nil {
			return nil, nil, err
		}
		members := make(map[int64]bool)
		for _, country := range countries {
			if country.IsPartOfID != nil && *country.IsPartOfID == region.ID {
				members[country.ID] = true
			}
		}
		var scoped []models.Observation
		for _, obs := range observations {
			if obs.RegionID != nil && members[*obs.RegionID] {
				scoped = append(scoped, obs)
			}
		}
		observations = scoped
	}
	values, err := valueMap()
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(observations, func(i, j int) bool {
		a, _ := numericValue(&observations[i], values)
		b, _ := numericValue(&observations[j], values)
		return a > b
	})
	if len(observations) > topN {
		observations = observations[:topN]
	}
	countries, err := countrySrv.GetAll()
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[int64]models.Region, len(countries))
	for _, country := range countries {
		byID[country.ID] = country
	}
	owners := make([]models.Region, 0, len(observations))
	kept := make([]models.Observation, 0, len(observations))
	for _, obs := range observations {
		if obs.RegionID == nil {
			continue
		}
		if country, ok := byID[*obs.RegionID]; ok {
			owners = append(owners, country)
			kept = append(kept, obs)
		}
	}
	return owners, kept, nil
}

// observationsAverage 观测数值均值，无可用数值时为0
func observationsAverage(obs []models.Observation, values map[int64]models.Value) float64 {
	var sum float64
	var n int
	for i := range obs {
		if f, ok := numericValue(&obs[i], values); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// timeSortKey 时间维的排序键，三种形态折算到同一时间轴
func timeSortKey(t *models.TimeValue) int64 {
	switch t.Type {
	case models.TimeTypeInstant:
		if t.Timestamp != nil {
			return t.Timestamp.Unix()
		}
	case models.TimeTypeInterval:
		if t.StartDate != nil {
			return time.Time(*t.StartDate).Unix()
		}
	case models.TimeTypeYearInterval:
		if t.Year != nil {
			return time.Date(*t.Year, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
		}
	}
	return 0
}

// getRegionsOfRegion 直接下级区域，带译文
func getRegionsOfRegion(unCode int64, lang string) ([]models.Region, error) {
	region, err := regionSrv.GetByKey(unCode)
	if err != nil {
		return nil, err
	}
	all, err := regionSrv.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Region
	for _, r := range all {
		if r.Type == models.RegionTypeRegion && r.IsPartOfID != nil && *r.IsPartOfID == region.ID {
			out = append(out, r)
		}
	}
	translateRegions(out, lang)
	return out, nil
}

// getRegionsWithData 对给定指标有观测数据的一级区域，非空时把世界区域也带上
func getRegionsWithData(indicatorID, lang string) ([]models.Region, error) {
	regions, err := getRegionsOfRegion(worldUnCode, lang)
	if err != nil {
		return nil, err
	}
	observations, err := observationsOfIndicator(indicatorID)
	if err != nil {
		return nil, err
	}
	withObs := make(map[int64]bool)
	for _, obs := range observations {
		if obs.RegionID != nil {
			withObs[*obs.RegionID] = true
		}
	}
	countries, err := countrySrv.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Region
	for _, region := range regions {
		for _, country := range countries {
			if country.IsPartOfID != nil && *country.IsPartOfID == region.ID && withObs[country.ID] {
				out = append(out, region)
				break
			}
		}
	}
	if len(out) > 0 {
		world, err := regionSrv.GetByKey(worldUnCode)
		if err == nil {
			w := *world
			translateRegion(&w, lang)
			out = append(out, w)
		}
	}
	return out, nil
}
