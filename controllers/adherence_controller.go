package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdherenceController struct {
	Doses *services.DoseService
}

func NewAdherenceController(doses *services.DoseService) *AdherenceController {
	return &AdherenceController{Doses: doses}
}

// GET /user/adherence/day?date=YYYY-MM-DD
func (ac *AdherenceController) GetDay(c *gin.Context) {
	uid := c.GetUint("userID")

	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	doses, err := ac.Doses.ListDoses(uid, date, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.ComputeStatus(doses, date))
}

// GET /user/adherence/month?year=YYYY&month=1..12
func (ac *AdherenceController) GetMonth(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = v
	}
	if m := c.Query("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = v
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	doses, err := ac.Doses.ListDoses(uid, first, last)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.BuildMonth(doses, year, time.Month(month), now))
}
