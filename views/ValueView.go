package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type ValueController struct{}

func (ctl *ValueController) GetAll(c *gin.Context) {
	values, err := valueSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, values)
}

func (ctl *ValueController) Post(c *gin.Context) {
	var value models.Value
	if err := c.ShouldBindJSON(&value); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if value.Value == nil {
		response.BadRequest(c, "数值不能为空")
		return
	}
	if err := valueSrv.Insert(&value); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/values/"+strconv.FormatInt(value.ID, 10))
}

func (ctl *ValueController) PutAll(c *gin.Context) {
	var values []models.Value
	if err := c.ShouldBindJSON(&values); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := valueSrv.UpdateAll(values); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *ValueController) DeleteAll(c *gin.Context) {
	if err := valueSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *ValueController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	value, err := valueSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "数值不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, value)
}

func (ctl *ValueController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := valueSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "数值不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	value := *persisted
	if err := c.ShouldBindJSON(&value); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	value.ID = id
	if err := valueSrv.Update(&value); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *ValueController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := valueSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

type MeasurementUnitController struct{}

func (ctl *MeasurementUnitController) GetAll(c *gin.Context) {
	units, err := unitSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, units)
}

func (ctl *MeasurementUnitController) Post(c *gin.Context) {
	var unit models.MeasurementUnit
	if err := c.ShouldBindJSON(&unit); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if unit.Name == "" {
		response.BadRequest(c, "计量单位名称不能为空")
		return
	}
	if err := unitSrv.Insert(&unit); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/measurement_units/"+strconv.FormatInt(unit.ID, 10))
}

func (ctl *MeasurementUnitController) PutAll(c *gin.Context) {
	var units []models.MeasurementUnit
	if err := c.ShouldBindJSON(&units); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := unitSrv.UpdateAll(units); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *MeasurementUnitController) DeleteAll(c *gin.Context) {
	if err := unitSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *MeasurementUnitController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	unit, err := unitSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "计量单位不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, unit)
}

func (ctl *MeasurementUnitController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := unitSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "计量单位不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	unit := *persisted
	if err := c.ShouldBindJSON(&unit); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	unit.ID = id
	if err := unitSrv.Update(&unit); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *MeasurementUnitController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := unitSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}
