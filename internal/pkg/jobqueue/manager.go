package jobqueue

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/internal/pkg/database"
	"github.com/jmk307/hellmap-api/internal/pkg/district"
	"github.com/jmk307/hellmap-api/internal/pkg/env"
	"github.com/jmk307/hellmap-api/internal/pkg/keyword"
	"github.com/jmk307/hellmap-api/internal/pkg/region"
)

// Manager manages the global job queue and background tasks
type Manager struct {
	queue         *Queue
	aggregator    *region.Aggregator
	refreshTicker *time.Ticker
	stopCh        chan struct{}
	wg            sync.WaitGroup
	mu            sync.Mutex
	running       bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global job queue manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		workerCount, err := strconv.Atoi(env.GetEnv("JOB_WORKER_COUNT", "3"))
		if err != nil || workerCount <= 0 {
			workerCount = 3
		}
		globalManager = &Manager{
			queue:      NewQueue(workerCount, DefaultDeps(nil)),
			aggregator: region.NewAggregator(district.NewClassifier(), keyword.NewExtractor()),
			stopCh:     make(chan struct{}),
		}
	})
	return globalManager
}

// GetQueue returns the managed job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// SetDeps replaces the processor dependencies before Start. main uses this to
// hand in the configured media store.
func (m *Manager) SetDeps(deps *Deps) {
	m.queue.deps = deps
}

// Start starts the job queue and background tasks
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[JobQueue Manager] Starting job queue and background tasks")

	m.queue.Start()

	refreshMinutes, err := strconv.Atoi(env.GetEnv("SNAPSHOT_REFRESH_MINUTES", "10"))
	if err != nil || refreshMinutes <= 0 {
		refreshMinutes = 10
	}
	m.refreshTicker = time.NewTicker(time.Duration(refreshMinutes) * time.Minute)
	m.wg.Add(1)
	go m.refreshWorker()

	log.Info("[JobQueue Manager] Started successfully")
}

// Stop stops the job queue and background tasks
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[JobQueue Manager] Stopping job queue and background tasks...")

	if m.refreshTicker != nil {
		m.refreshTicker.Stop()
	}

	close(m.stopCh)
	m.stopCh = nil
	m.running = false

	m.wg.Wait()
	m.queue.Stop()

	log.Info("[JobQueue Manager] Stopped successfully")
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// refreshWorker periodically rebuilds the region snapshot so enrichment stays
// current even without report traffic.
func (m *Manager) refreshWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			log.Info("[JobQueue Manager] Snapshot refresh worker stopping")
			return
		case <-m.refreshTicker.C:
			if _, err := m.RebuildSnapshot(); err != nil {
				log.Errorf("[JobQueue Manager] Snapshot rebuild error: %v", err)
			}
		}
	}
}

// RebuildSnapshot recomputes the district aggregation from the live report
// set, stores it under a fresh generation and enqueues one enrichment job per
// bucket. Controllers call this after report mutations and when serving a
// cache miss.
func (m *Manager) RebuildSnapshot() (*region.Snapshot, error) {
	var reports []models.Report
	if err := database.GetDB().
		Preload("Likes").
		Where("is_deleted = ?", false).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}

	views := make([]region.Report, 0, len(reports))
	for _, r := range reports {
		views = append(views, region.Report{
			ReportID: r.UUID,
			Emotion:  r.Emotion,
			Title:    r.Title,
			Content:  r.Content,
			Location: r.Location,
			Likes:    len(r.Likes),
		})
	}

	generation, err := region.NextGeneration()
	if err != nil {
		return nil, err
	}

	snapshot := &region.Snapshot{
		Generation:  generation,
		GeneratedAt: time.Now(),
		Buckets:     m.aggregator.Aggregate(views),
	}
	if err := region.SaveSnapshot(snapshot); err != nil {
		return nil, err
	}

	for _, b := range snapshot.Buckets {
		payload := RegionEnrichmentJobPayload{Region: b.Region, Generation: generation}
		if _, err := m.queue.EnqueueJob(JobTypeRegionEnrichment, payload.ToMap()); err != nil {
			log.Errorf("[JobQueue Manager] Failed to enqueue enrichment for %s: %v", b.Region, err)
		}
	}

	return snapshot, nil
}
