package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) GetCustomers(c *gin.Context)   { list(a, c, a.customers().List) }
func (a *API) GetCustomer(c *gin.Context)    { getOne(a, c, "Customer", a.customers().GetByID) }
func (a *API) CreateCustomer(c *gin.Context) { create(a, c, "Customer", a.customers().Create) }
func (a *API) UpdateCustomer(c *gin.Context) { update(a, c, "Customer", a.customers().Update) }
func (a *API) DeleteCustomer(c *gin.Context) { remove(a, c, "Customer", a.customers().Delete) }

func (a *API) GetStaffList(c *gin.Context) { list(a, c, a.staff().List) }
func (a *API) GetStaff(c *gin.Context)     { getOne(a, c, "Staff", a.staff().GetByID) }
func (a *API) CreateStaff(c *gin.Context)  { create(a, c, "Staff", a.staff().Create) }
func (a *API) UpdateStaff(c *gin.Context)  { update(a, c, "Staff", a.staff().Update) }
func (a *API) DeleteStaff(c *gin.Context)  { remove(a, c, "Staff", a.staff().Delete) }

// Users go through UserService so passwords are hashed before storage.
func (a *API) GetUsers(c *gin.Context)   { list(a, c, a.users().List) }
func (a *API) GetUser(c *gin.Context)    { getOne(a, c, "User", a.users().GetByID) }
func (a *API) CreateUser(c *gin.Context) { create(a, c, "User", a.userService(c).Create) }
func (a *API) UpdateUser(c *gin.Context) { update(a, c, "User", a.userService(c).Update) }
func (a *API) DeleteUser(c *gin.Context) { remove(a, c, "User", a.users().Delete) }

// GET /api/activities?userId=&limit=
func (a *API) GetActivities(c *gin.Context) {
	userID, ok := queryInt64(c, "userId")
	if !ok {
		return
	}
	limit, ok := queryInt64(c, "limit")
	if !ok || !a.dbReady(c) {
		return
	}
	items, err := a.activities().List(c.Request.Context(), userID, int(limit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) CreateActivity(c *gin.Context) { create(a, c, "Activity", a.activities().Create) }
func (a *API) DeleteActivity(c *gin.Context) { remove(a, c, "Activity", a.activities().Delete) }
