package visits

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the retention purge on a cron schedule (with seconds).
type Scheduler struct {
	cron      *cron.Cron
	store     *Store
	retention time.Duration
}

func NewScheduler(store *Store, spec string, retention time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		store:     store,
		retention: retention,
	}
	if _, err := s.cron.AddFunc(spec, s.PurgeNow); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	log.Println("Visit retention purge scheduled")
	s.cron.Start()
}

// Stop waits for a running purge to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) PurgeNow() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.store.Purge(ctx, s.retention)
	if err != nil {
		log.Printf("[error] operation=visits_purge error=%v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[info] operation=visits_purge removed=%d older_than=%s", deleted, s.retention)
	}
}
