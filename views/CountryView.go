package views

import (
	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type CountryController struct{}

// countryDetail 国家详情，附带上级区域
type countryDetail struct {
	models.Region
	ParentRegion *models.Region `json:"region,omitempty"`
}

// 国家列表
func (ctl *CountryController) GetAll(c *gin.Context) {
	countries, err := countrySrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	translateRegions(countries, requestedLang(c))
	response.Success(c, countries)
}

// 新建国家，iso2和iso3必填
func (ctl *CountryController) Post(c *gin.Context) {
	var country models.Region
	if err := c.ShouldBindJSON(&country); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if country.Iso2 == "" || country.Iso3 == "" {
		response.BadRequest(c, "iso2和iso3不能为空")
		return
	}
	country.Type = models.RegionTypeCountry
	if err := countrySrv.Insert(&country); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/countries/"+country.Iso3)
}

// 批量更新
func (ctl *CountryController) PutAll(c *gin.Context) {
	var countries []models.Region
	if err := c.ShouldBindJSON(&countries); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := countrySrv.UpdateAll(countries); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 清空国家
func (ctl *CountryController) DeleteAll(c *gin.Context) {
	if err := countrySrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 单个国家，带上级区域展开
func (ctl *CountryController) Get(c *gin.Context) {
	country, err := countrySrv.GetByKey(c.Param("iso3"))
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
	detail := countryDetail{Region: *country}
	if country.IsPartOfID != nil {
		if parent, err := regionSrv.GetByArtificialCode(*country.IsPartOfID); err == nil {
			translateRegion(parent, lang)
			detail.ParentRegion = parent
		}
	}
	response.Success(c, detail)
}

// 更新国家，目标不存在时400
func (ctl *CountryController) Put(c *gin.Context) {
	iso3 := c.Param("iso3")
	persisted, err := countrySrv.GetByKey(iso3)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "国家不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	country := *persisted
	if err := c.ShouldBindJSON(&country); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	country.Iso3 = iso3
	if err := countrySrv.Update(&country); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 删除国家，幂等
func (ctl *CountryController) Delete(c *gin.Context) {
	if err := countrySrv.Delete(c.Param("iso3")); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 一个国家出现过的指标
func (ctl *CountryController) GetIndicators(c *gin.Context) {
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
	seen := make(map[string]bool)
	var indicators []models.Indicator
	for _, o := range obs {
		if o.IndicatorID == "" || seen[o.IndicatorID] {
			continue
		}
		seen[o.IndicatorID] = true
		ind, err := indicatorSrv.GetByKey(o.IndicatorID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			response.Error(c, 500, err.Error())
			return
		}
		indicators = append(indicators, *ind)
	}
	translateIndicators(indicators, requestedLang(c))
	response.Success(c, indicators)
}

// 按国家和指标id取指标
func (ctl *CountryController) GetIndicator(c *gin.Context) {
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
	indicatorID := c.Param("id")
	for _, o := range obs {
		if o.IndicatorID == indicatorID {
			ind, err := indicatorSrv.GetByKey(indicatorID)
			if err != nil {
				break
			}
			translateIndicator(ind, requestedLang(c))
			response.Success(c, ind)
			return
		}
	}
	response.NotFound(c, "指标不存在")
}

// 一个国家数据的最近更新时间
func (ctl *CountryController) GetLastUpdate(c *gin.Context) {
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
	var last int64
	for _, o := range obs {
		ind, err := indicatorSrv.GetByKey(o.IndicatorID)
		if err != nil {
			continue
		}
		if ind.LastUpdate > last {
			last = ind.LastUpdate
		}
	}
	response.Success(c, gin.H{"last_update": last})
}
