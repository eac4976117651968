package views

import (
	"sort"
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
)

// ObservationFull 观测的展开形态，嵌套国家、指标、时间、数值和计量单位
type ObservationFull struct {
	models.Observation
	Country         *models.Region          `json:"country,omitempty"`
	Indicator       *models.Indicator       `json:"indicator,omitempty"`
	RefTime         *models.TimeValue       `json:"ref_time,omitempty"`
	FullValue       *models.Value           `json:"value,omitempty"`
	MeasurementUnit *models.MeasurementUnit `json:"measurement_unit,omitempty"`
	Tendency        *int                    `json:"tendency,omitempty"`
}

// decorateObservations 把观测和它的关联对象拼成展开形态
func decorateObservations(obs []models.Observation, country *models.Region, indicator *models.Indicator) ([]ObservationFull, error) {
	times, err := timeMap()
	if err != nil {
		return nil, err
	}
	values, err := valueMap()
	if err != nil {
		return nil, err
	}
	var unit *models.MeasurementUnit
	if indicator != nil && indicator.MeasurementUnitID != nil {
		if u, err := unitSrv.GetByKey(*indicator.MeasurementUnitID); err == nil {
			unit = u
		}
	}
	out := make([]ObservationFull, 0, len(obs))
	for _, o := range obs {
		full := ObservationFull{Observation: o, Country: country, Indicator: indicator, MeasurementUnit: unit}
		if o.RefTimeID != nil {
			if t, ok := times[*o.RefTimeID]; ok {
				tc := t
				full.RefTime = &tc
			}
		}
		if o.ValueID != nil {
			if v, ok := values[*o.ValueID]; ok {
				vc := v
				full.FullValue = &vc
			}
		}
		out = append(out, full)
	}
	return out, nil
}

// attachTendencies 按国家分组在时间序上标注涨跌
// -2无法比较，0持平，-1下降，1上升；list需已按时间排序
func attachTendencies(list []ObservationFull, values map[int64]models.Value) {
	prev := make(map[int64]*float64)
	seen := make(map[int64]bool)
	for i := range list {
		o := &list[i]
		var rid int64
		if o.RegionID != nil {
			rid = *o.RegionID
		}
		cur, curOK := numericValue(&o.Observation, values)
		var tendency int
		switch {
		case !seen[rid] || !curOK || prev[rid] == nil:
			tendency = -2
		case cur == *prev[rid]:
			tendency = 0
		case *prev[rid] > cur:
			tendency = -1
		default:
			tendency = 1
		}
		t := tendency
		o.Tendency = &t
		seen[rid] = true
		if curOK {
			v := cur
			prev[rid] = &v
		} else {
			prev[rid] = nil
		}
	}
}

func sortByRefTime(list []ObservationFull) {
	sort.SliceStable(list, func(i, j int) bool {
		var a, b int64
		if list[i].RefTime != nil {
			a = timeSortKey(list[i].RefTime)
		}
		if list[j].RefTime != nil {
			b = timeSortKey(list[j].RefTime)
		}
		return a < b
	})
}

// getObservationsByTwoFilters 双条件观测选择
// 接受国家+指标、指标+国家、区域+指标三种组合，带涨跌标注
func getObservationsByTwoFilters(first, second, lang string) ([]ObservationFull, bool, error) {
	country, cErr := countrySrv.GetByKey(first)
	if cErr != nil && !isNotFound(cErr) {
		return nil, false, cErr
	}
	if cErr == nil {
		indicator, iErr := indicatorSrv.GetByKey(second)
		if iErr != nil && !isNotFound(iErr) {
			return nil, false, iErr
		}
		if iErr == nil {
			return observationsOfCountryAndIndicator(country, indicator, lang)
		}
	}
	indicator, iErr := indicatorSrv.GetByKey(first)
	if iErr != nil && !isNotFound(iErr) {
		return nil, false, iErr
	}
	if iErr == nil {
		country, cErr := countrySrv.GetByKey(second)
		if cErr != nil && !isNotFound(cErr) {
			return nil, false, cErr
		}
		if cErr == nil {
			return observationsOfCountryAndIndicator(country, indicator, lang)
		}
		return nil, false, nil
	}
	unCode, err := strconv.ParseInt(first, 10, 64)
	if err != nil {
		return nil, false, nil
	}
	region, rErr := regionSrv.GetByKey(unCode)
	if rErr != nil {
		if isNotFound(rErr) {
			return nil, false, nil
		}
		return nil, false, rErr
	}
	indicator, iErr = indicatorSrv.GetByKey(second)
	if iErr != nil {
		if isNotFound(iErr) {
			return nil, false, nil
		}
		return nil, false, iErr
	}
	return observationsOfRegionAndIndicator(region, indicator, lang)
}

func observationsOfCountryAndIndicator(country *models.Region, indicator *models.Indicator, lang string) ([]ObservationFull, bool, error) {
	translateRegion(country, lang)
	translateIndicator(indicator, lang)
	obs, err := countryObservations(country)
	if err != nil {
		return nil, false, err
	}
	var selected []models.Observation
	for _, o := range obs {
		if o.IndicatorID == indicator.ID {
			selected = append(selected, o)
		}
	}
	full, err := decorateObservations(selected, country, indicator)
	if err != nil {
		return nil, false, err
	}
	finishTwoFilterList(full)
	return full, true, nil
}

func observationsOfRegionAndIndicator(region *models.Region, indicator *models.Indicator, lang string) ([]ObservationFull, bool, error) {
	translateIndicator(indicator, lang)
	countries, err := countrySrv.GetAll()
	if err != nil {
		return nil, false, err
	}
	var full []ObservationFull
	for i := range countries {
		country := countries[i]
		if !isWorldRegion(region) && (country.IsPartOfID == nil || *country.IsPartOfID != region.ID) {
			continue
		}
		translateRegion(&country, lang)
		obs, err := countryObservations(&country)
		if err != nil {
			return nil, false, err
		}
		var selected []models.Observation
		for _, o := range obs {
			if o.IndicatorID == indicator.ID {
				selected = append(selected, o)
			}
		}
		part, err := decorateObservations(selected, &country, indicator)
		if err != nil {
			return nil, false, err
		}
		full = append(full, part...)
	}
	finishTwoFilterList(full)
	return full, true, nil
}

func finishTwoFilterList(list []ObservationFull) {
	if len(list) == 0 || list[0].RefTime == nil {
		return
	}
	sortByRefTime(list)
	values := make(map[int64]models.Value, len(list))
	for _, o := range list {
		if o.FullValue != nil {
			values[o.FullValue.ID] = *o.FullValue
		}
	}
	attachTendencies(list, values)
}

// selectObservations 单id多态分发：国家iso3、指标id、区域un_code或观测id
func selectObservations(id string) (list []models.Observation, single *models.Observation, ok bool, isList bool, err error) {
	country, cErr := countrySrv.GetByKey(id)
	if cErr != nil && !isNotFound(cErr) {
		return nil, nil, false, false, cErr
	}
	if cErr == nil {
		obs, err := countryObservations(country)
		return obs, nil, true, true, err
	}
	indicator, iErr := indicatorSrv.GetByKey(id)
	if iErr != nil && !isNotFound(iErr) {
		return nil, nil, false, false, iErr
	}
	if iErr == nil {
		// 指标所属数据集的观测
		if indicator.DatasetID == nil {
			return nil, nil, true, true, nil
		}
		all, err := observationSrv.GetAll()
		if err != nil {
			return nil, nil, false, false, err
		}
		var out []models.Observation
		for _, o := range all {
			if o.DatasetID != nil && *o.DatasetID == *indicator.DatasetID {
				out = append(out, o)
			}
		}
		return out, nil, true, true, nil
	}
	if unCode, convErr := strconv.ParseInt(id, 10, 64); convErr == nil {
		region, rErr := regionSrv.GetByKey(unCode)
		if rErr != nil && !isNotFound(rErr) {
			return nil, nil, false, false, rErr
		}
		if rErr == nil && region.Type == models.RegionTypeRegion {
			countries, err := countrySrv.GetAll()
			if err != nil {
				return nil, nil, false, false, err
			}
			var out []models.Observation
			for i := range countries {
				if countries[i].IsPartOfID == nil || *countries[i].IsPartOfID != region.ID {
					continue
				}
				obs, err := countryObservations(&countries[i])
				if err != nil {
					return nil, nil, false, false, err
				}
				out = append(out, obs...)
			}
			return out, nil, true, true, nil
		}
	}
	obs, oErr := observationSrv.GetByKey(id)
	if oErr != nil {
		if isNotFound(oErr) {
			return nil, nil, false, false, nil
		}
		return nil, nil, false, false, oErr
	}
	return nil, obs, true, false, nil
}
