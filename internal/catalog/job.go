package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RecategorizeJobArgs asks a worker to reclassify one page of products.
// Each processed page enqueues the job for the following page until the whole
// catalog has been visited.
type RecategorizeJobArgs struct {
	// After is the last product ID of the previous page, uuid.Nil for the first page.
	After uuid.UUID `json:"after" river:"unique"`
	// TaxonomyVersion is the rule set the pass was started with. Jobs carrying
	// another version than the running taxonomy are canceled.
	TaxonomyVersion string `json:"taxonomyVersion" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args RecategorizeJobArgs) Kind() string { return "RecategorizeProductsJob" }

// InsertOpts makes a page unique per taxonomy version while an equal job is
// still pending or in flight within the unique period. Completed jobs do not
// count, so a finished pass can be started again.
func (args RecategorizeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
