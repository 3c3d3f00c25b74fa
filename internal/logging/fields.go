package logging

const (
	// FieldComponent is the standardized structured logging key for
	// component names; the console handler promotes it into the header.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run
	// correlation identifiers.
	FieldRunID = "run_id"
	// FieldPath is the standardized structured logging key for the input
	// file a log line concerns.
	FieldPath = "path"
	// FieldKind is the standardized structured logging key for the media
	// kind (image or video).
	FieldKind = "kind"
)
