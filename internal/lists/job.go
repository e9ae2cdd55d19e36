package lists

import (
	"maike/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an image generation job submitted to
// River. The list ID is the unique key so a list never has two generations in
// flight.
type JobArgs struct {
	ListID domain.ListID `json:"listId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the generation worker.
func (args JobArgs) Kind() string { return "GenerateImagesJob" }

// InsertOpts makes the job unique per list while it is waiting or running.
// Finished jobs do not block a new generation.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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
