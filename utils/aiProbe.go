package utils

import (
	"log"
	"tiffin/ai"
	"tiffin/config"
	"time"

	"github.com/robfig/cron/v3"
)

// logProbe logs probe scheduler events with timestamp
func logProbe(message string) {
	log.Printf("[AI-PROBE %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartAIProbeScheduler periodically re-checks the Gemini service so the
// analyzer flips between the AI and fallback paths without a restart.
func StartAIProbeScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ProbeSpec, func() {
		ai.Reprobe()
	}); err != nil {
		logProbe("Invalid AI_PROBE_CRON spec, scheduler not started: " + err.Error())
		return c
	}

	c.Start()
	logProbe("AI availability probe scheduled: " + config.AppConfig.ProbeSpec)
	return c
}
