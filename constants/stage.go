package constants

// CaptureStage is the canonical stage for a single capture pipeline run.
type CaptureStage string

// Stable values (logged and stored as these exact strings).
const (
	StageValidatingInput CaptureStage = "VALIDATING_INPUT"
	StageCheckingService CaptureStage = "CHECKING_SERVICE" // extraction availability probe
	StageExtracting      CaptureStage = "EXTRACTING"       // OCR in progress
	StageValidatingText  CaptureStage = "VALIDATING_TEXT"  // recipe heuristic check
	StageParsing         CaptureStage = "PARSING"          // structuring free text
	StagePersisting      CaptureStage = "PERSISTING"       // repository save
	StageCompleted       CaptureStage = "COMPLETED"        // terminal success
	StageFailed          CaptureStage = "FAILED"           // terminal failure
)
