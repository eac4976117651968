package views

import (
	"net/http"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type GeoController struct{}

// countryFeature 国家质心转GeoJSON要素
func countryFeature(country *models.Region) *geojson.Feature {
	var geom orb.Geometry
	if country.CenterLon != nil && country.CenterLat != nil {
		geom = orb.Point{*country.CenterLon, *country.CenterLat}
	}
	feature := geojson.NewFeature(geom)
	feature.ID = country.Iso3
	feature.Properties = geojson.Properties{
		"iso2":    country.Iso2,
		"iso3":    country.Iso3,
		"name":    country.Name,
		"un_code": country.UnCode,
	}
	return feature
}

// 全部国家的GeoJSON要素集
func (ctl *GeoController) GetCountries(c *gin.Context) {
	countries, err := countrySrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	translateRegions(countries, requestedLang(c))
	fc := geojson.NewFeatureCollection()
	for i := range countries {
		fc.Append(countryFeature(&countries[i]))
	}
	c.JSON(http.StatusOK, fc)
}

// 单个国家的GeoJSON要素
func (ctl *GeoController) GetCountry(c *gin.Context) {
	country, err := countrySrv.GetByKey(c.Param("iso3"))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "国家不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	translateRegion(country, requestedLang(c))
	c.JSON(http.StatusOK, countryFeature(country))
}
