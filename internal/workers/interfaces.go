// Package workers runs the background jobs of the server.
//
// Every job implements [Worker] and is started by the [Workers] aggregate,
// which blocks until all of them return.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
