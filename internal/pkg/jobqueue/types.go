package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeRegionEnrichment JobType = "region_enrichment"
	JobTypeMediaThumbnail   JobType = "media_thumbnail"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// RegionEnrichmentJobPayload identifies one snapshot bucket to enrich with a
// summary and a generated image. The generation pins the snapshot the result
// belongs to; results for an outdated generation are discarded.
type RegionEnrichmentJobPayload struct {
	Region     string `json:"region"`
	Generation int64  `json:"generation"`
}

// ToMap converts the payload to a map for storage
func (p RegionEnrichmentJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"region":     p.Region,
		"generation": p.Generation,
	}
}

// RegionEnrichmentJobPayloadFromMap creates a payload from a map
func RegionEnrichmentJobPayloadFromMap(data map[string]interface{}) (*RegionEnrichmentJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload RegionEnrichmentJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// MediaThumbnailJobPayload identifies one uploaded report image that still
// needs a thumbnail.
type MediaThumbnailJobPayload struct {
	ReportID   uint   `json:"report_id"`
	ReportUUID string `json:"report_uuid"`
	ObjectKey  string `json:"object_key"`
}

// ToMap converts the payload to a map for storage
func (p MediaThumbnailJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"report_id":   p.ReportID,
		"report_uuid": p.ReportUUID,
		"object_key":  p.ObjectKey,
	}
}

// MediaThumbnailJobPayloadFromMap creates a payload from a map
func MediaThumbnailJobPayloadFromMap(data map[string]interface{}) (*MediaThumbnailJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload MediaThumbnailJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// IsRetryable checks if the job can be retried
func (j *Job) IsRetryable() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// MarkAsProcessing updates the job status to processing
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.UpdatedAt = now
	j.ProcessedAt = &now
}

// MarkAsCompleted updates the job status to completed
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.UpdatedAt = now
	j.CompletedAt = &now
	j.ErrorMsg = ""
}

// MarkAsFailed updates the job status to failed
func (j *Job) MarkAsFailed(errorMsg string) {
	j.Status = JobStatusFailed
	j.UpdatedAt = time.Now()
	j.ErrorMsg = errorMsg
	j.RetryCount++
}

// MarkAsRetrying updates the job status to retrying
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}
