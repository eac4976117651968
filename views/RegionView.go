package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type RegionController struct{}

func parseUnCode(c *gin.Context) (int64, bool) {
	unCode, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "un_code格式错误")
		return 0, false
	}
	return unCode, true
}

// 区域列表，含国家子类型
func (ctl *RegionController) GetAll(c *gin.Context) {
	regions, err := regionSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	translateRegions(regions, requestedLang(c))
	response.Success(c, regions)
}

// 新建区域，un_code必填
func (ctl *RegionController) Post(c *gin.Context) {
	var region models.Region
	if err := c.ShouldBindJSON(&region); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if region.UnCode == nil {
		response.BadRequest(c, "un_code不能为空")
		return
	}
	if region.Type == "" {
		region.Type = models.RegionTypeRegion
	}
	if err := regionSrv.Insert(&region); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/regions/"+strconv.FormatInt(*region.UnCode, 10))
}

func (ctl *RegionController) PutAll(c *gin.Context) {
	var regions []models.Region
	if err := c.ShouldBindJSON(&regions); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := regionSrv.UpdateAll(regions); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionController) DeleteAll(c *gin.Context) {
	if err := regionSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionController) Get(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	region, err := regionSrv.GetByKey(unCode)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	translateRegion(region, requestedLang(c))
	response.Success(c, region)
}

func (ctl *RegionController) Put(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	persisted, err := regionSrv.GetByKey(unCode)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	region := *persisted
	if err := c.ShouldBindJSON(&region); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	region.UnCode = persisted.UnCode
	if err := regionSrv.Update(&region); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionController) Delete(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	if err := regionSrv.Delete(unCode); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 区域下属国家，世界区域返回全部国家
func (ctl *RegionController) GetCountries(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	region, err := regionSrv.GetByKey(unCode)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	countries, err := countrySrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var out []models.Region
	if isWorldRegion(region) {
		out = countries
	} else {
		for _, country := range countries {
			if country.IsPartOfID != nil && *country.IsPartOfID == region.ID {
				out = append(out, country)
			}
		}
	}
	translateRegions(out, requestedLang(c))
	response.Success(c, out)
}

// 区域下按iso3取国家
func (ctl *RegionController) GetCountry(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	region, err := regionSrv.GetByKey(unCode)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	iso3 := c.Param("iso3")
	countries, err := countrySrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	for _, country := range countries {
		if country.Iso3 == iso3 && country.IsPartOfID != nil && *country.IsPartOfID == region.ID {
			translateRegion(&country, requestedLang(c))
			response.Success(c, country)
			return
		}
	}
	response.NotFound(c, "国家不存在")
}

// 区域的直接下级区域
func (ctl *RegionController) GetRegions(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	regions, err := getRegionsOfRegion(unCode, requestedLang(c))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	if regions == nil {
		regions = []models.Region{}
	}
	response.Success(c, regions)
}

// 区域下有观测数据的国家
func (ctl *RegionController) GetCountriesWithData(c *gin.Context) {
	unCode, ok := parseUnCode(c)
	if !ok {
		return
	}
	region, err := regionSrv.GetByKey(unCode)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "区域不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	countries, err := countrySrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	var out []models.Region
	for i := range countries {
		if countries[i].IsPartOfID == nil || *countries[i].IsPartOfID != region.ID {
			continue
		}
		obs, err := countryObservations(&countries[i])
		if err != nil {
			response.Error(c, 500, err.Error())
			return
		}
		if len(obs) > 0 {
			out = append(out, countries[i])
		}
	}
	translateRegions(out, requestedLang(c))
	if out == nil {
		out = []models.Region{}
	}
	response.Success(c, out)
}
