package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type DataSourceController struct{}

func (ctl *DataSourceController) GetAll(c *gin.Context) {
	datasources, err := datasourceSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, datasources)
}

func (ctl *DataSourceController) Post(c *gin.Context) {
	var ds models.DataSource
	if err := c.ShouldBindJSON(&ds); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ds.Name == "" {
		response.BadRequest(c, "数据源名称不能为空")
		return
	}
	if err := datasourceSrv.Insert(&ds); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/datasources/"+strconv.FormatInt(ds.ID, 10))
}

func (ctl *DataSourceController) PutAll(c *gin.Context) {
	var datasources []models.DataSource
	if err := c.ShouldBindJSON(&datasources); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := datasourceSrv.UpdateAll(datasources); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DataSourceController) DeleteAll(c *gin.Context) {
	if err := datasourceSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DataSourceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ds, err := datasourceSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "数据源不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, ds)
}

func (ctl *DataSourceController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := datasourceSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "数据源不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	ds := *persisted
	if err := c.ShouldBindJSON(&ds); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ds.ID = id
	if err := datasourceSrv.Update(&ds); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DataSourceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := datasourceSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 数据源下属数据集的指标
func (ctl *DataSourceController) datasourceIndicators(c *gin.Context, id int64) ([]models.Indicator, bool) {
	if _, err := datasourceSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "数据源不存在")
			return nil, false
		}
		response.Error(c, 500, err.Error())
		return nil, false
	}
	datasets, err := datasetSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return nil, false
	}
	owned := make(map[int64]bool)
	for _, d := range datasets {
		if d.DatasourceID != nil && *d.DatasourceID == id {
			owned[d.ID] = true
		}
	}
	indicators, err := indicatorSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return nil, false
	}
	var out []models.Indicator
	for _, ind := range indicators {
		if ind.DatasetID != nil && owned[*ind.DatasetID] {
			out = append(out, ind)
		}
	}
	return out, true
}

func (ctl *DataSourceController) GetIndicators(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	indicators, ok := ctl.datasourceIndicators(c, id)
	if !ok {
		return
	}
	translateIndicators(indicators, requestedLang(c))
	if indicators == nil {
		indicators = []models.Indicator{}
	}
	response.Success(c, indicators)
}

func (ctl *DataSourceController) GetIndicator(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	indicators, ok := ctl.datasourceIndicators(c, id)
	if !ok {
		return
	}
	indicatorID := c.Param("indicator_id")
	for i := range indicators {
		if indicators[i].ID == indicatorID {
			translateIndicator(&indicators[i], requestedLang(c))
			response.Success(c, indicators[i])
			return
		}
	}
	response.NotFound(c, "指标不存在")
}

type DatasetController struct{}

// datasetPayload 建数据集的请求体，附带要挂接的指标id
type datasetPayload struct {
	models.Dataset
	IndicatorsID []string `json:"indicators_id"`
}

func (ctl *DatasetController) GetAll(c *gin.Context) {
	datasets, err := datasetSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, datasets)
}

// 新建数据集并挂接指标，未知指标id跳过
func (ctl *DatasetController) Post(c *gin.Context) {
	var payload datasetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := datasetSrv.InsertWithIndicators(&payload.Dataset, payload.IndicatorsID); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/datasets/"+strconv.FormatInt(payload.Dataset.ID, 10))
}

func (ctl *DatasetController) PutAll(c *gin.Context) {
	var datasets []models.Dataset
	if err := c.ShouldBindJSON(&datasets); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := datasetSrv.UpdateAll(datasets); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DatasetController) DeleteAll(c *gin.Context) {
	if err := datasetSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DatasetController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	dataset, err := datasetSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "数据集不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, dataset)
}

func (ctl *DatasetController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := datasetSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "数据集不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	dataset := *persisted
	if err := c.ShouldBindJSON(&dataset); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	dataset.ID = id
	if err := datasetSrv.Update(&dataset); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *DatasetController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := datasetSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}
