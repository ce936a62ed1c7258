package controllers

import (
	"errors"
	"net/http"

	"github.com/mindkhichdi/diabeticks-sub000/models"
	"github.com/mindkhichdi/diabeticks-sub000/services"

	"github.com/gin-gonic/gin"
)

type SlotController struct {
	Slots *services.SlotService
}

func NewSlotController(slots *services.SlotService) *SlotController {
	return &SlotController{Slots: slots}
}

// GET /user/slots
func (sc *SlotController) GetSlots(c *gin.Context) {
	uid := c.GetUint("userID")

	slots, err := sc.Slots.ResolveSlots(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type preferenceReq struct {
	CustomLabel *string `json:"custom_label"`
	CustomTime  *string `json:"custom_time"`
}

// PUT /user/slots/:slotId
func (sc *SlotController) UpdateSlot(c *gin.Context) {
	uid := c.GetUint("userID")
	slotID := models.SlotID(c.Param("slotId"))

	var req preferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := sc.Slots.SetPreference(uid, slotID, req.CustomLabel, req.CustomTime)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSlot) || errors.Is(err, services.ErrInvalidTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
