package ports

import "context"

// Contract for persisting the ordered assignment rows of a completed run.
type AssignmentSink interface {
	WriteAssignments(ctx context.Context, rows []AssignmentRow) error
}
