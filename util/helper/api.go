package helper_util

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetDateParam reads the date query parameter, defaulting to today.
func GetDateParam(c *gin.Context) (string, error) {
	date := c.DefaultQuery("date", FormatDate(time.Now()))
	if _, err := ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// GetForceParam reads the force query parameter for sync endpoints.
func GetForceParam(c *gin.Context) (bool, error) {
	return strconv.ParseBool(c.DefaultQuery("force", "false"))
}
