package content

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RevalidateArgs asks the worker to drop cached public responses tagged with
// any of Topics.
type RevalidateArgs struct {
	Topics []string `json:"topics"`
}

func (RevalidateArgs) Kind() string { return "RevalidateTopicsJob" }

func (RevalidateArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 5}
}

// ContactNotificationArgs asks the worker to email the site owner about a
// contact form submission.
type ContactNotificationArgs struct {
	ContactID int64 `json:"contactId" river:"unique"`
}

func (ContactNotificationArgs) Kind() string { return "ContactNotificationJob" }

// InsertOpts makes the notification unique per submission so a retried
// enqueue never mails twice.
func (ContactNotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 10,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: 24 * time.Hour,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
