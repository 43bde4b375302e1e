// controller/menu_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	campus_errors "github.com/campushub/campus-api/errors"
	"github.com/campushub/campus-api/service"
	"github.com/campushub/campus-api/util"
	helper_util "github.com/campushub/campus-api/util/helper"
)

type MenuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

// RegisterRoutes registers the API routes
func (mc *MenuController) RegisterRoutes(r *gin.RouterGroup) {
	menus := r.Group("/menus")
	{
		menus.GET("/dates", mc.GetMenuDates)
		menus.POST("/sync", mc.SyncMenus)
	}
	r.GET("/cafeterias/:id/menus", mc.GetMenus)
}

// SyncMenus endpoint
func (mc *MenuController) SyncMenus(c *gin.Context) {
	force, err := helper_util.GetForceParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid force parameter", err)
		return
	}

	count, err := mc.menuService.SyncMenus(c, force)
	if err != nil {
		var validationErr *campus_errors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			util.RespondWithError(c, http.StatusUnprocessableEntity, "Feed contains an invalid record", err)
		case errors.Is(err, campus_errors.ErrSyncInProgress):
			util.RespondWithError(c, http.StatusConflict, "Sync already in progress", err)
		case errors.Is(err, campus_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to sync menus", campus_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": count})
}

// GetMenus endpoint
func (mc *MenuController) GetMenus(c *gin.Context) {
	cafeteriaID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cafeteriaID <= 0 {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid cafeteria ID", campus_errors.ErrCafeteriaNotFound)
		return
	}

	date, err := helper_util.GetDateParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid date parameter", campus_errors.ErrInvalidDateParam)
		return
	}

	menus, err := mc.menuService.GetMenus(c, cafeteriaID, date)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve menus", err)
		return
	}

	c.JSON(http.StatusOK, menus)
}

// GetMenuDates endpoint
func (mc *MenuController) GetMenuDates(c *gin.Context) {
	dates, err := mc.menuService.GetMenuDates(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list menu dates", err)
		return
	}

	c.JSON(http.StatusOK, dates)
}
