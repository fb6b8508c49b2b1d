package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled jobs. Currently a single job: a daily
// occupancy digest logged at 08:30 so the office sees the numbers without
// opening the dashboard. The digest reuses the same on-demand computation
// as the stats endpoint; nothing is cached.
type CronService struct {
	cron             *cron.Cron
	dashboardService *DashboardService
}

// NewCronService creates a new cron service
func NewCronService(dashboardService *DashboardService) *CronService {
	return &CronService{
		cron:             cron.New(),
		dashboardService: dashboardService,
	}
}

// Start schedules and starts all jobs
func (s *CronService) Start() {
	// 08:30 daily
	if _, err := s.cron.AddFunc("30 8 * * *", s.logOccupancyDigest); err != nil {
		log.Printf("⚠️ Failed to schedule occupancy digest: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 CronService started (occupancy digest at 08:30 daily)")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) logOccupancyDigest() {
	stats, err := s.dashboardService.GetStats(context.Background())
	if err != nil {
		log.Printf("⚠️ Occupancy digest failed: %v", err)
		return
	}
	log.Printf("📊 Occupancy digest: %d/%d units occupied (%.1f%%), %d pending, revenue %s, %d total bookings",
		stats.OccupiedUnits, stats.TotalUnits, stats.OccupancyRate,
		stats.PendingBookings, stats.TotalRevenue.StringFixed(2), stats.TotalBookings)
}
