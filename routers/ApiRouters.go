package routers

import (
	"github.com/GrainArc/DataAtlas/views"
	"github.com/gin-gonic/gin"
)

// ApiRouters 挂载/api下的数据访问路由
func ApiRouters(r *gin.Engine) {
	countryCtl := &views.CountryController{}
	regionCtl := &views.RegionController{}
	indicatorCtl := &views.IndicatorController{}
	observationCtl := &views.ObservationController{}
	userCtl := &views.UserController{}
	organizationCtl := &views.OrganizationController{}
	datasourceCtl := &views.DataSourceController{}
	datasetCtl := &views.DatasetController{}
	valueCtl := &views.ValueController{}
	topicCtl := &views.TopicController{}
	unitCtl := &views.MeasurementUnitController{}
	regionTransCtl := &views.RegionTranslationController{}
	indicatorTransCtl := &views.IndicatorTranslationController{}
	topicTransCtl := &views.TopicTranslationController{}
	geoCtl := &views.GeoController{}

	api := r.Group("/api")
	{
		api.GET("/countries", countryCtl.GetAll)
		api.POST("/countries", countryCtl.Post)
		api.PUT("/countries", countryCtl.PutAll)
		api.DELETE("/countries", countryCtl.DeleteAll)
		api.GET("/countries/geojson", geoCtl.GetCountries)
		api.GET("/countries/:iso3", countryCtl.Get)
		api.PUT("/countries/:iso3", countryCtl.Put)
		api.DELETE("/countries/:iso3", countryCtl.Delete)
		api.GET("/countries/:iso3/indicators", countryCtl.GetIndicators)
		api.GET("/countries/:iso3/indicators/:id", countryCtl.GetIndicator)
		api.GET("/countries/:iso3/last_update", countryCtl.GetLastUpdate)
		api.GET("/countries/:iso3/geojson", geoCtl.GetCountry)

		api.GET("/indicators", indicatorCtl.GetAll)
		api.POST("/indicators", indicatorCtl.Post)
		api.PUT("/indicators", indicatorCtl.PutAll)
		api.DELETE("/indicators", indicatorCtl.DeleteAll)
		api.GET("/indicators/starred", indicatorCtl.Starred)
		api.GET("/indicators/translations", indicatorTransCtl.GetAll)
		api.POST("/indicators/translations", indicatorTransCtl.Post)
		api.PUT("/indicators/translations", indicatorTransCtl.PutAll)
		api.DELETE("/indicators/translations", indicatorTransCtl.DeleteAll)
		api.GET("/indicators/translations/:indicator_id/:lang_code", indicatorTransCtl.Get)
		api.PUT("/indicators/translations/:indicator_id/:lang_code", indicatorTransCtl.Put)
		api.DELETE("/indicators/translations/:indicator_id/:lang_code", indicatorTransCtl.Delete)
		api.GET("/indicators/:id", indicatorCtl.Get)
		api.PUT("/indicators/:id", indicatorCtl.Put)
		api.DELETE("/indicators/:id", indicatorCtl.Delete)
		api.GET("/indicators/:id/top", indicatorCtl.Top)
		api.GET("/indicators/:id/average", indicatorCtl.Average)
		api.GET("/indicators/:id/average/range", indicatorCtl.AverageRange)
		api.GET("/indicators/:id/compatible", indicatorCtl.Compatible)
		api.GET("/indicators/:id/related", indicatorCtl.Related)
		api.GET("/indicators/:id/regions_with_data", indicatorCtl.RegionsWithData)
		api.GET("/indicators/:id/regions_without_data", indicatorCtl.RegionsWithoutData)
		api.GET("/indicators/:id/range", indicatorCtl.Range)
		api.GET("/indicators/:id/:iso3/range", indicatorCtl.CountryRange)
		api.GET("/indicators/:id/:iso3/last_update", indicatorCtl.CountryLastUpdate)
		api.GET("/indicators/:id/:iso3/tendency", indicatorCtl.CountryTendency)

		api.GET("/users", userCtl.GetAll)
		api.POST("/users", userCtl.Post)
		api.PUT("/users", userCtl.PutAll)
		api.DELETE("/users", userCtl.DeleteAll)
		api.GET("/users/:id", userCtl.Get)
		api.PUT("/users/:id", userCtl.Put)
		api.DELETE("/users/:id", userCtl.Delete)

		api.GET("/organizations", organizationCtl.GetAll)
		api.POST("/organizations", organizationCtl.Post)
		api.PUT("/organizations", organizationCtl.PutAll)
		api.DELETE("/organizations", organizationCtl.DeleteAll)
		api.GET("/organizations/:id", organizationCtl.Get)
		api.PUT("/organizations/:id", organizationCtl.Put)
		api.DELETE("/organizations/:id", organizationCtl.Delete)
		api.GET("/organizations/:id/users", organizationCtl.GetUsers)
		api.GET("/organizations/:id/users/:user_id", organizationCtl.GetUser)

		api.GET("/observations", observationCtl.GetAll)
		api.POST("/observations", observationCtl.Post)
		api.PUT("/observations", observationCtl.PutAll)
		api.DELETE("/observations", observationCtl.DeleteAll)
		api.GET("/observations/:id", observationCtl.Get)
		api.PUT("/observations/:id", observationCtl.Put)
		api.DELETE("/observations/:id", observationCtl.Delete)
		api.GET("/observations/:id/range", observationCtl.GetRange)
		api.GET("/observations/:id/starred", observationCtl.GetCountryStarred)
		api.GET("/observations/:id/:second", observationCtl.GetByTwo)
		api.GET("/observations/:id/:second/average", observationCtl.GetByTwoAverage)

		api.GET("/regions", regionCtl.GetAll)
		api.POST("/regions", regionCtl.Post)
		api.PUT("/regions", regionCtl.PutAll)
		api.DELETE("/regions", regionCtl.DeleteAll)
		api.GET("/regions/translations", regionTransCtl.GetAll)
		api.POST("/regions/translations", regionTransCtl.Post)
		api.PUT("/regions/translations", regionTransCtl.PutAll)
		api.DELETE("/regions/translations", regionTransCtl.DeleteAll)
		api.GET("/regions/translations/:region_id/:lang_code", regionTransCtl.Get)
		api.PUT("/regions/translations/:region_id/:lang_code", regionTransCtl.Put)
		api.DELETE("/regions/translations/:region_id/:lang_code", regionTransCtl.Delete)
		api.GET("/regions/:id", regionCtl.Get)
		api.PUT("/regions/:id", regionCtl.Put)
		api.DELETE("/regions/:id", regionCtl.Delete)
		api.GET("/regions/:id/countries", regionCtl.GetCountries)
		api.GET("/regions/:id/countries/:iso3", regionCtl.GetCountry)
		api.GET("/regions/:id/regions", regionCtl.GetRegions)
		api.GET("/regions/:id/countries_with_data", regionCtl.GetCountriesWithData)

		api.GET("/datasources", datasourceCtl.GetAll)
		api.POST("/datasources", datasourceCtl.Post)
		api.PUT("/datasources", datasourceCtl.PutAll)
		api.DELETE("/datasources", datasourceCtl.DeleteAll)
		api.GET("/datasources/:id", datasourceCtl.Get)
		api.PUT("/datasources/:id", datasourceCtl.Put)
		api.DELETE("/datasources/:id", datasourceCtl.Delete)
		api.GET("/datasources/:id/indicators", datasourceCtl.GetIndicators)
		api.GET("/datasources/:id/indicators/:indicator_id", datasourceCtl.GetIndicator)

		api.GET("/datasets", datasetCtl.GetAll)
		api.POST("/datasets", datasetCtl.Post)
		api.PUT("/datasets", datasetCtl.PutAll)
		api.DELETE("/datasets", datasetCtl.DeleteAll)
		api.GET("/datasets/:id", datasetCtl.Get)
		api.PUT("/datasets/:id", datasetCtl.Put)
		api.DELETE("/datasets/:id", datasetCtl.Delete)

		api.GET("/values", valueCtl.GetAll)
		api.POST("/values", valueCtl.Post)
		api.PUT("/values", valueCtl.PutAll)
		api.DELETE("/values", valueCtl.DeleteAll)
		api.GET("/values/:id", valueCtl.Get)
		api.PUT("/values/:id", valueCtl.Put)
		api.DELETE("/values/:id", valueCtl.Delete)

		api.GET("/topics", topicCtl.GetAll)
		api.POST("/topics", topicCtl.Post)
		api.PUT("/topics", topicCtl.PutAll)
		api.DELETE("/topics", topicCtl.DeleteAll)
		api.GET("/topics/translations", topicTransCtl.GetAll)
		api.POST("/topics/translations", topicTransCtl.Post)
		api.PUT("/topics/translations", topicTransCtl.PutAll)
		api.DELETE("/topics/translations", topicTransCtl.DeleteAll)
		api.GET("/topics/translations/:topic_id/:lang_code", topicTransCtl.Get)
		api.PUT("/topics/translations/:topic_id/:lang_code", topicTransCtl.Put)
		api.DELETE("/topics/translations/:topic_id/:lang_code", topicTransCtl.Delete)
		api.GET("/topics/:id", topicCtl.Get)
		api.PUT("/topics/:id", topicCtl.Put)
		api.DELETE("/topics/:id", topicCtl.Delete)
		api.GET("/topics/:id/indicators", topicCtl.GetIndicators)
		api.GET("/topics/:id/indicators/:indicator_id", topicCtl.GetIndicator)

		api.GET("/measurement_units", unitCtl.GetAll)
		api.POST("/measurement_units", unitCtl.Post)
		api.PUT("/measurement_units", unitCtl.PutAll)
		api.DELETE("/measurement_units", unitCtl.DeleteAll)
		api.GET("/measurement_units/:id", unitCtl.Get)
		api.PUT("/measurement_units/:id", unitCtl.Put)
		api.DELETE("/measurement_units/:id", unitCtl.Delete)
	}
}

// GraphRouters 挂载/graphs下的图表数据路由
func GraphRouters(r *gin.Engine) {
	graphCtl := &views.GraphController{}
	graphs := r.Group("/graphs")
	{
		graphs.GET("/barchart", graphCtl.BarChart)
		graphs.GET("/piechart", graphCtl.PieChart)
		graphs.GET("/linechart", graphCtl.LineChart)
		graphs.GET("/areachart", graphCtl.AreaChart)
		graphs.GET("/polarchart", graphCtl.PolarChart)
		graphs.GET("/table", graphCtl.Table)
		graphs.GET("/scatterchart", graphCtl.ScatterChart)
	}
}
