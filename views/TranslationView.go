package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

// 三族翻译的增删改查，键都是(实体id, 语言代码)

type RegionTranslationController struct{}

func (ctl *RegionTranslationController) GetAll(c *gin.Context) {
	translations, err := regionTransSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, translations)
}

func (ctl *RegionTranslationController) Post(c *gin.Context) {
	var trans models.RegionTranslation
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if trans.LangCode == "" || trans.RegionID == 0 {
		response.BadRequest(c, "region_id和lang_code不能为空")
		return
	}
	if err := regionTransSrv.Insert(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/regions/translations/"+strconv.FormatInt(trans.RegionID, 10)+"/"+trans.LangCode)
}

func (ctl *RegionTranslationController) PutAll(c *gin.Context) {
	var translations []models.RegionTranslation
	if err := c.ShouldBindJSON(&translations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := regionTransSrv.UpdateAll(translations); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionTranslationController) DeleteAll(c *gin.Context) {
	if err := regionTransSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionTranslationController) Get(c *gin.Context) {
	id, ok := parseID(c, "region_id")
	if !ok {
		return
	}
	trans, err := regionTransSrv.GetByKey(regionTransKey(id, c.Param("lang_code")))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, trans)
}

func (ctl *RegionTranslationController) Put(c *gin.Context) {
	id, ok := parseID(c, "region_id")
	if !ok {
		return
	}
	key := regionTransKey(id, c.Param("lang_code"))
	persisted, err := regionTransSrv.GetByKey(key)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	trans := *persisted
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	trans.RegionID = key.ID
	trans.LangCode = key.Lang
	if err := regionTransSrv.Update(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *RegionTranslationController) Delete(c *gin.Context) {
	id, ok := parseID(c, "region_id")
	if !ok {
		return
	}
	err := regionTransSrv.Delete(regionTransKey(id, c.Param("lang_code")))
	if err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

type IndicatorTranslationController struct{}

func (ctl *IndicatorTranslationController) GetAll(c *gin.Context) {
	translations, err := indicatorTransSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, translations)
}

func (ctl *IndicatorTranslationController) Post(c *gin.Context) {
	var trans models.IndicatorTranslation
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if trans.LangCode == "" || trans.IndicatorID == "" {
		response.BadRequest(c, "indicator_id和lang_code不能为空")
		return
	}
	if err := indicatorTransSrv.Insert(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/indicators/translations/"+trans.IndicatorID+"/"+trans.LangCode)
}

func (ctl *IndicatorTranslationController) PutAll(c *gin.Context) {
	var translations []models.IndicatorTranslation
	if err := c.ShouldBindJSON(&translations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := indicatorTransSrv.UpdateAll(translations); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorTranslationController) DeleteAll(c *gin.Context) {
	if err := indicatorTransSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorTranslationController) Get(c *gin.Context) {
	key := indicatorTransKey(c.Param("indicator_id"), c.Param("lang_code"))
	trans, err := indicatorTransSrv.GetByKey(key)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, trans)
}

func (ctl *IndicatorTranslationController) Put(c *gin.Context) {
	key := indicatorTransKey(c.Param("indicator_id"), c.Param("lang_code"))
	persisted, err := indicatorTransSrv.GetByKey(key)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	trans := *persisted
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	trans.IndicatorID = key.ID
	trans.LangCode = key.Lang
	if err := indicatorTransSrv.Update(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *IndicatorTranslationController) Delete(c *gin.Context) {
	key := indicatorTransKey(c.Param("indicator_id"), c.Param("lang_code"))
	if err := indicatorTransSrv.Delete(key); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

type TopicTranslationController struct{}

func (ctl *TopicTranslationController) GetAll(c *gin.Context) {
	translations, err := topicTransSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, translations)
}

func (ctl *TopicTranslationController) Post(c *gin.Context) {
	var trans models.TopicTranslation
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if trans.LangCode == "" || trans.TopicID == 0 {
		response.BadRequest(c, "topic_id和lang_code不能为空")
		return
	}
	if err := topicTransSrv.Insert(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/topics/translations/"+strconv.FormatInt(trans.TopicID, 10)+"/"+trans.LangCode)
}

func (ctl *TopicTranslationController) PutAll(c *gin.Context) {
	var translations []models.TopicTranslation
	if err := c.ShouldBindJSON(&translations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := topicTransSrv.UpdateAll(translations); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicTranslationController) DeleteAll(c *gin.Context) {
	if err := topicTransSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicTranslationController) Get(c *gin.Context) {
	id, ok := parseID(c, "topic_id")
	if !ok {
		return
	}
	trans, err := topicTransSrv.GetByKey(topicTransKey(id, c.Param("lang_code")))
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, trans)
}

func (ctl *TopicTranslationController) Put(c *gin.Context) {
	id, ok := parseID(c, "topic_id")
	if !ok {
		return
	}
	key := topicTransKey(id, c.Param("lang_code"))
	persisted, err := topicTransSrv.GetByKey(key)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "翻译不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	trans := *persisted
	if err := c.ShouldBindJSON(&trans); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	trans.TopicID = key.ID
	trans.LangCode = key.Lang
	if err := topicTransSrv.Update(&trans); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicTranslationController) Delete(c *gin.Context) {
	id, ok := parseID(c, "topic_id")
	if !ok {
		return
	}
	err := topicTransSrv.Delete(topicTransKey(id, c.Param("lang_code")))
	if err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}
