package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindkhichdi/diabeticks-sub000/config"
	"github.com/mindkhichdi/diabeticks-sub000/routes"
	"github.com/mindkhichdi/diabeticks-sub000/services"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable, in-app alerts only: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	slots := services.NewSlotService(config.DB)
	doses := services.NewDoseService(config.DB)
	celebrations := services.NewCelebrationTracker()

	scheduler := services.NewReminderScheduler(config.DB, slots)
	scheduler.Start()

	go func() {
		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
		<-exit
		scheduler.Stop()
		os.Exit(0)
	}()

	r := routes.SetupRouter(routes.Deps{
		Slots:        slots,
		Doses:        doses,
		Celebrations: celebrations,
		Push:         push,
		Hub:          hub,
	})
	r.Run(":8080")
}
