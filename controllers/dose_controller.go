package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"
	"github.com/mindkhichdi/diabeticks-sub000/services"

	"github.com/gin-gonic/gin"
)

type DoseController struct {
	Doses        *services.DoseService
	Celebrations *services.CelebrationTracker
}

func NewDoseController(doses *services.DoseService, cel *services.CelebrationTracker) *DoseController {
	return &DoseController{Doses: doses, Celebrations: cel}
}

type recordDoseReq struct {
	Slot    models.SlotID `json:"slot" binding:"required"`
	TakenAt *time.Time    `json:"taken_at"` // omitted means now; may be backdated
}

// POST /user/doses
func (dc *DoseController) RecordDose(c *gin.Context) {
	uid := c.GetUint("userID")

	var req recordDoseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	takenAt := time.Now()
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}

	rec, err := dc.Doses.RecordDose(uid, req.Slot, takenAt)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSlot) || errors.Is(err, services.ErrFutureDose) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// recompute the recorded day and let the celebration tracker observe it
	doses, err := dc.Doses.ListDoses(uid, takenAt, takenAt)
	status := services.DailyStatus{}
	celebrated := false
	if err == nil {
		status = services.ComputeStatus(doses, takenAt)
		celebrated = dc.Celebrations.Observe(uid, status)
	}

	c.JSON(http.StatusCreated, gin.H{
		"dose":       rec,
		"status":     status,
		"celebrated": celebrated,
	})
}

// GET /user/doses?date=YYYY-MM-DD or ?from=YYYY-MM-DD&to=YYYY-MM-DD
func (dc *DoseController) ListDoses(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doses, err := dc.Doses.ListDoses(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doses": doses})
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	if date := c.Query("date"); date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date format. Use YYYY-MM-DD")
		}
		return d, d, nil
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, errors.New("missing 'date' or 'from'/'to' query params")
	}
	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'from' date. Use YYYY-MM-DD")
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'to' date. Use YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("'to' must not be before 'from'")
	}
	return from, to, nil
}
