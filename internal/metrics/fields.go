package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrDocument = "document"
	AttrRoutine  = "routine"
	AttrTask     = "task"
	AttrUnit     = "unit"
	AttrOutcome  = "outcome"
)
