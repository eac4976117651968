package views

import (
	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ObservationController struct{}

// 观测列表
func (ctl *ObservationController) GetAll(c *gin.Context) {
	observations, err := observationSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, observations)
}

// 新建观测，缺id时生成uuid
func (ctl *ObservationController) Post(c *gin.Context) {
	var obs models.Observation
	if err := c.ShouldBindJSON(&obs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if obs.ID == "" {
		obs.ID = uuid.NewString()
	}
	if err := observationSrv.Insert(&obs); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/observations/"+obs.ID)
}

func (ctl *ObservationController) PutAll(c *gin.Context) {
	var observations []models.Observation
	if err := c.ShouldBindJSON(&observations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := observationSrv.UpdateAll(observations); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *ObservationController) DeleteAll(c *gin.Context) {
	if err := observationSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 单id多态查询：国家、指标、区域或单个观测
func (ctl *ObservationController) Get(c *gin.Context) {
	list, single, ok, isList, err := selectObservations(c.Param("id"))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if !ok {
		response.NotFound(c, "观测不存在")
		return
	}
	if isList {
		if list == nil {
			list = []models.Observation{}
		}
		response.Success(c, list)
		return
	}
	response.Success(c, single)
}

func (ctl *ObservationController) Put(c *gin.Context) {
	id := c.Param("id")
	persisted, err := observationSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "观测不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	obs := *persisted
	if err := c.ShouldBindJSON(&obs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	obs.ID = id
	if err := observationSrv.Update(&obs); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *ObservationController) Delete(c *gin.Context) {
	if err := observationSrv.Delete(c.Param("id")); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 双条件观测，国家+指标、指标+国家或区域+指标
func (ctl *ObservationController) GetByTwo(c *gin.Context) {
	list, matched, err := getObservationsByTwoFilters(c.Param("id"), c.Param("second"), requestedLang(c))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if !matched {
		response.BadRequest(c, "过滤条件无法识别")
		return
	}
	if list == nil {
		list = []ObservationFull{}
	}
	response.Success(c, list)
}

// 双条件观测均值，整体加按时间分组
func (ctl *ObservationController) GetByTwoAverage(c *gin.Context) {
	list, matched, err := getObservationsByTwoFilters(c.Param("id"), c.Param("second"), requestedLang(c))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if !matched {
		response.BadRequest(c, "过滤条件无法识别")
		return
	}
	values := make(map[int64]models.Value, len(list))
	plain := make([]models.Observation, 0, len(list))
	for _, o := range list {
		if o.FullValue != nil {
			values[o.FullValue.ID] = *o.FullValue
		}
		plain = append(plain, o.Observation)
	}
	averages := []gin.H{{"time": "all", "average": observationsAverage(plain, values)}}
	// list已按时间排好序，按时间展示值分组
	groupOrder := []string{}
	groups := make(map[string][]models.Observation)
	for _, o := range list {
		if o.RefTime == nil {
			continue
		}
		label := o.RefTime.TimeString()
		if _, ok := groups[label]; !ok {
			groupOrder = append(groupOrder, label)
		}
		groups[label] = append(groups[label], o.Observation)
	}
	for _, label := range groupOrder {
		grouped := groups[label]
		var withValue []models.Observation
		for _, o := range grouped {
			if _, ok := numericValue(&o, values); ok {
				withValue = append(withValue, o)
			}
		}
		if len(withValue) > 0 {
			averages = append(averages, gin.H{"time": label, "average": observationsAverage(withValue, values)})
		}
	}
	response.Success(c, averages)
}

// 一个国家加星指标的观测
func (ctl *ObservationController) GetCountryStarred(c *gin.Context) {
	country, err := countrySrv.GetByKey(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "国家不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	lang := requestedLang(c)
	translateRegion(country, lang)
	obs, err := countryObservations(country)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var full []ObservationFull
	for _, o := range obs {
		ind, err := indicatorSrv.GetByKey(o.IndicatorID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			response.Error(c, 500, err.Error())
			return
		}
		if !ind.Starred {
			continue
		}
		translateIndicator(ind, lang)
		part, err := decorateObservations([]models.Observation{o}, country, ind)
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		full = append(full, part...)
	}
	if full == nil {
		full = []ObservationFull{}
	}
	response.Success(c, full)
}

// 单id多态查询加时间范围
func (ctl *ObservationController) GetRange(c *gin.Context) {
	from, to, err := parseRangeDates(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	list, single, ok, isList, err := selectObservations(c.Param("id"))
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if !ok {
		response.NotFound(c, "观测不存在")
		return
	}
	if !isList {
		response.Success(c, single)
		return
	}
	list, err = filterObservationsByDateRange(list, from, to)
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	if list == nil {
		list = []models.Observation{}
	}
	response.Success(c, list)
}
