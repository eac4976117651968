package views

import (
	"strconv"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/response"
	"github.com/gin-gonic/gin"
)

type OrganizationController struct{}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, name+"格式错误")
		return 0, false
	}
	return id, true
}

func (ctl *OrganizationController) GetAll(c *gin.Context) {
	organizations, err := organizationSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, organizations)
}

func (ctl *OrganizationController) Post(c *gin.Context) {
	var org models.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if org.ID == 0 {
		response.BadRequest(c, "组织id不能为空")
		return
	}
	if err := organizationSrv.Insert(&org); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/organizations/"+strconv.FormatInt(org.ID, 10))
}

func (ctl *OrganizationController) PutAll(c *gin.Context) {
	var organizations []models.Organization
	if err := c.ShouldBindJSON(&organizations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := organizationSrv.UpdateAll(organizations); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *OrganizationController) DeleteAll(c *gin.Context) {
	if err := organizationSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *OrganizationController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	org, err := organizationSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "组织不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, org)
}

func (ctl *OrganizationController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := organizationSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "组织不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	org := *persisted
	if err := c.ShouldBindJSON(&org); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	org.ID = id
	if err := organizationSrv.Update(&org); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *OrganizationController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := organizationSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

// 组织下的用户
func (ctl *OrganizationController) GetUsers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := organizationSrv.GetByKey(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c, "组织不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	users, err := userSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	out := []models.User{}
	for _, u := range users {
		if u.OrganizationID != nil && *u.OrganizationID == id {
			out = append(out, u)
		}
	}
	response.Success(c, out)
}

// 组织下按id取用户
func (ctl *OrganizationController) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	user, err := userSrv.GetByKey(userID)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	if user.OrganizationID == nil || *user.OrganizationID != id {
		response.NotFound(c, "用户不存在")
		return
	}
	response.Success(c, user)
}

type UserController struct{}

func (ctl *UserController) GetAll(c *gin.Context) {
	users, err := userSrv.GetAll()
	if err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, users)
}

func (ctl *UserController) Post(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if user.ID == 0 {
		response.BadRequest(c, "用户id不能为空")
		return
	}
	if err := userSrv.Insert(&user); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.Created(c, "/api/users/"+strconv.FormatInt(user.ID, 10))
}

func (ctl *UserController) PutAll(c *gin.Context) {
	var users []models.User
	if err := c.ShouldBindJSON(&users); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := userSrv.UpdateAll(users); err != nil {
		if isNotFound(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *UserController) DeleteAll(c *gin.Context) {
	if err := userSrv.DeleteAll(); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *UserController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := userSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	response.Success(c, user)
}

func (ctl *UserController) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	persisted, err := userSrv.GetByKey(id)
	if err != nil {
		if isNotFound(err) {
			response.BadRequest(c, "用户不存在")
			return
		}
		response.Error(c, 500, err.Error())
		return
	}
	user := *persisted
	if err := c.ShouldBindJSON(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user.ID = id
	if err := userSrv.Update(&user); err != nil {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}

func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := userSrv.Delete(id); err != nil && !isNotFound(err) {
		response.Error(c, 500, err.Error())
		return
	}
	response.NoContent(c)
}
