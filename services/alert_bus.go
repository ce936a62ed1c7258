package services

import (
	"encoding/json"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert row, broadcasts it to the user's open
// websockets, and pushes to registered devices. Safe to call anywhere;
// a nil dependency degrades to skipping that channel.
func EmitAlert(userID uint, typ, message string, data map[string]string) {
	if _alert.db == nil {
		return // not initialized
	}

	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if len(data) > 0 {
		raw, _ := json.Marshal(data)
		a.Data = datatypes.JSON(raw)
	}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := "Diabeticks"
		switch typ {
		case "reminder":
			title = "Medicine Reminder"
		case "celebration":
			title = "All Doses Taken"
		}
		_alert.ps.PushToUser(userID, title, message, data)
	}
}
