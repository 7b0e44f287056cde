package models

// Category is one of the fixed waste-collection categories the council
// reports. No other keys ever appear in a Collection.
type Category string

const (
	Rubbish   Category = "Rubbish"
	Recycling Category = "Recycling"
	Food      Category = "Food"
)

// Collection maps a category to its date string. After extraction the values
// are canonical date tokens ("Tuesday, 6th JAN"); after normalization they
// are relative display strings ("Today", "Tomorrow", "5 Days (Tue 6th)").
// Categories the site did not report are simply absent.
type Collection map[Category]string

// Record renders the output contract handed to the display consumer.
func (c Collection) Record() map[string]string {
	out := make(map[string]string, len(c))
	for k, v := range c {
		out[string(k)] = v
	}
	return out
}

// ErrorCode names the failure kinds a pipeline stage can report.
type ErrorCode string

const (
	// CodeBrowser is reported when one of the scraper's explicit waits
	// (navigation, address dropdown, results container) times out.
	CodeBrowser ErrorCode = "Browser"
	// CodeUnknown is the generic fallback for any other stage failure.
	CodeUnknown ErrorCode = "Unknown"
	// CodeInvalidHTML means the fragment contained zero collection blocks.
	CodeInvalidHTML ErrorCode = "Invalid HTML"
	// CodeJSONMapping means blocks were found but none carried a known
	// category marker.
	CodeJSONMapping ErrorCode = "JSON Mapping"
)

// StageError is the failure half of a stage's result. Once produced it
// bypasses the remaining stages and goes to the consumer verbatim.
type StageError struct {
	Code  ErrorCode
	Cause error
}

func (e *StageError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Cause.Error()
	}
	return string(e.Code)
}

func (e *StageError) Unwrap() error { return e.Cause }

// Record renders the single-key error record of the output contract.
func (e *StageError) Record() map[string]string {
	return map[string]string{"Error": string(e.Code)}
}
