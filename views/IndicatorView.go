package views

import (
	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type IndicatorController struct{}

// 指标列表
func (ctl *IndicatorController) GetAll(c *gin.Context) {
	indicators, err := indicatorSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	translateIndicators(indicators, requestedLang(c))
	response.Success(c, indicators)
}

// 新建指标，id必填
func (ctl *IndicatorController) Post(c *gin.Context) {
	var indicator models.Indicator
	if err := c.ShouldBindJSON(&indicator); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if indicator.ID == "" {
		response.BadRequest(c, "指标id不能为空")
		return
	}
	if indicator.Type == "" {
		indicator.Type = models.IndicatorTypePlain
	}
	if err := indicatorSrv.Insert(&indicator); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/indicators/"+indicator.ID)
}

func (ctl *IndicatorController) PutAll(c *gin.Context) {
	var indicators []models.Indicator
	if err := c.ShouldBindJSON(&indicators); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := indicatorSrv.UpdateAll(indicators); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorController) DeleteAll(c *gin.Context) {
	if err := indicatorSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorController) Get(c *gin.Context) {
	indicator, err := indicatorSrv.GetByKey(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	translateIndicator(indicator, requestedLang(c))
	response.Success(c, indicator)
}

func (ctl *IndicatorController) Put(c *gin.Context) {
	id := c.Param("id")
	persisted, err := indicatorSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	indicator := *persisted
	if err := c.ShouldBindJSON(&indicator); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	indicator.ID = id
	if err := indicatorSrv.Update(&indicator); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorController) Delete(c *gin.Context) {
	if err := indicatorSrv.Delete(c.Param("id")); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 指标top榜，输出iso3与观测id对
func (ctl *IndicatorController) Top(c *gin.Context) {
	id := c.Param("id")
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	countries, top, err := filterByRegionAndTop(c, id)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	output := make([]gin.H, 0, len(top))
	for i := range top {
		output = append(output, gin.H{"iso3": countries[i].Iso3, "value_id": top[i].ID})
	}
	response.Success(c, output)
}

// 指标观测均值
func (ctl *IndicatorController) Average(c *gin.Context) {
	id := c.Param("id")
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	_, top, err := filterByRegionAndTop(c, id)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	values, err := valueMap()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, gin.H{"value": observationsAverage(top, values)})
}

// 同计量单位的可比指标，不含自身
func (ctl *IndicatorController) Compatible(c *gin.Context) {
	indicator, err := indicatorSrv.GetByKey(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	all, err := indicatorSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var compatibles []models.Indicator
	for _, ind := range all {
		if ind.ID == indicator.ID {
			continue
		}
		if indicator.MeasurementUnitID == nil || ind.MeasurementUnitID == nil {
			continue
		}
		if *indicator.MeasurementUnitID == *ind.MeasurementUnitID {
			compatibles = append(compatibles, ind)
		}
	}
	translateIndicators(compatibles, requestedLang(c))
	response.Success(c, compatibles)
}

// 加星指标
func (ctl *IndicatorController) Starred(c *gin.Context) {
	all, err := indicatorSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var starred []models.Indicator
	for _, ind := range all {
		if ind.Starred {
			starred = append(starred, ind)
		}
	}
	translateIndicators(starred, requestedLang(c))
	response.Success(c, starred)
}

// 关系表里以该指标为源的目标指标
func (ctl *IndicatorController) Related(c *gin.Context) {
	id := c.Param("id")
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	relations, err := relationshipSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var related []models.Indicator
	for _, rel := range relations {
		if rel.SourceID != id {
			continue
		}
		target, err := indicatorSrv.GetByKey(rel.TargetID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			response.Error(c, 500, err.Error())
			return
		}
		related = append(related, *target)
	}
	translateIndicators(related, requestedLang(c))
	response.Success(c, related)
}

// 有数据的区域
func (ctl *IndicatorController) RegionsWithData(c *gin.Context) {
	id := c.Param("id")
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	regions, err := getRegionsWithData(id, requestedLang(c))
	if err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, regions)
}

// 无数据的区域，全都无数据时把世界区域也带上
func (ctl *IndicatorController) RegionsWithoutData(c *gin.Context) {
	id := c.Param("id")
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	lang := requestedLang(c)
	withData, err := getRegionsWithData(id, lang)
	if err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	regions, err := getRegionsOfRegion(worldUnCode, lang)
	if err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	withIDs := make(map[int64]bool, len(withData))
	for _, r := range withData {
		withIDs[r.ID] = true
	}
	var without []models.Region
	for _, r := range regions {
		if !withIDs[r.ID] {
			without = append(without, r)
		}
	}
	if len(without) == len(regions) {
		if world, err := regionSrv.GetByKey(worldUnCode); err == nil {
			w := *world
			translateRegion(&w, lang)
			without = append(without, w)
		}
	}
	response.Success(c, without)
}

// 指标观测，可选时间范围
func (ctl *IndicatorController) Range(c *gin.Context) {
	id := c.Param("id")
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	obs, err := observationsOfIndicator(id)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	obs, err = filterObservationsByDateRange(obs, from, to)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, obs)
}

// 指标观测均值，可选时间范围，空选择404
func (ctl *IndicatorController) AverageRange(c *gin.Context) {
	id := c.Param("id")
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	obs, err := observationsOfIndicator(id)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	obs, err = filterObservationsByDateRange(obs, from, to)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if len(obs) == 0 {
		response.NotFound(c, "无观测数据")
		return
	}
	values, err := valueMap()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, gin.H{"value": observationsAverage(obs, values)})
}

// 指标在一个国家的观测，可选时间范围
func (ctl *IndicatorController) CountryRange(c *gin.Context) {
	id := c.Param("id")
	iso3 := c.Param("iso3")
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	country, cErr := countrySrv.GetByKey(iso3)
	if cErr != nil {
		if isNotFound(cErr) {
			response.NotFound(c, "国家不存在")
			return
		}
		response.Error(c, 500, cErr.Error())
		return
	}
	if _, err := indicatorSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	obs, err := countryObservations(country)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var selected []models.Observation
	for _, o := range obs {
		if o.IndicatorID == id {
			selected = append(selected, o)
		}
	}
	selected, err = filterObservationsByDateRange(selected, from, to)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, selected)
}

// 指标在一个国家的最近更新时间
func (ctl *IndicatorController) CountryLastUpdate(c *gin.Context) {
	id := c.Param("id")
	country, err := countrySrv.GetByKey(c.Param("iso3"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "国家不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	obs, err := countryObservations(country)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	for _, o := range obs {
		if o.IndicatorID != id {
			continue
		}
		ind, err := indicatorSrv.GetByKey(id)
		if err != nil {
			break
		}
		response.Success(c, gin.H{"last_update": ind.LastUpdate})
		return
	}
	response.NotFound(c, "该国家无此指标观测")
}

// 指标在一个国家的期望走向
func (ctl *IndicatorController) CountryTendency(c *gin.Context) {
	id := c.Param("id")
	iso3 := c.Param("iso3")
	country, err := countrySrv.GetByKey(iso3)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "国家不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	obs, err := countryObservations(country)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	for _, o := range obs {
		if o.IndicatorID != id {
			continue
		}
		ind, err := indicatorSrv.GetByKey(id)
		if err != nil {
			break
		}
		response.Success(c, gin.H{"indicator_id": ind.ID, "iso3": iso3, "tendency": ind.PreferableTendency})
		return
	}
	response.NotFound(c, "该国家无此指标观测")
}
