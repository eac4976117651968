package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type TopicController struct{}

func (ctl *TopicController) GetAll(c *gin.Context) {
	topics, err := topicSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	lang := requestedLang(c)
	out := make([]topicView, 0, len(topics))
	for _, t := range topics {
		out = append(out, translateTopic(t, lang))
	}
	response.Success(c, out)
}

func (ctl *TopicController) Post(c *gin.Context) {
	var topic models.Topic
	if err := c.ShouldBindJSON(&topic); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if topic.ID == 0 {
		response.BadRequest(c, "话题id不能为空")
		return
	}
	if err := topicSrv.Insert(&topic); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/topics/"+strconv.FormatInt(topic.ID, 10))
}

func (ctl *TopicController) PutAll(c *gin.Context) {
	var topics []models.Topic
	if err := c.ShouldBindJSON(&topics); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := topicSrv.UpdateAll(topics); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicController) DeleteAll(c *gin.Context) {
	if err := topicSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	topic, err := topicSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "话题不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, translateTopic(*topic, requestedLang(c)))
}

func (ctl *TopicController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := topicSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "话题不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	topic := *persisted
	if err := c.ShouldBindJSON(&topic); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	topic.ID = id
	if err := topicSrv.Update(&topic); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *TopicController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := topicSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 话题下的指标
func (ctl *TopicController) GetIndicators(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := topicSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "话题不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	indicators, err := indicatorSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	out := []models.Indicator{}
	for _, ind := range indicators {
		if ind.TopicID != nil && *ind.TopicID == id {
			out = append(out, ind)
		}
	}
	translateIndicators(out, requestedLang(c))
	response.Success(c, out)
}

// 话题下按id取指标
func (ctl *TopicController) GetIndicator(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := topicSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "话题不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	indicatorID := c.Param("indicator_id")
	ind, err := indicatorSrv.GetByKey(indicatorID)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "指标不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	if ind.TopicID == nil || *ind.TopicID != id {
		response.NotFound(c, "指标不存在")
		return
	}
	translateIndicator(ind, requestedLang(c))
	response.Success(c, ind)
}
