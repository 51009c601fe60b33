package contracts

import "fmt"

// DataInsufficientError is returned only where a computation is mathematically
// undefined on the given input, such as a max/min over an empty window.
// Short-but-nonempty series degrade to sentinel values instead.
type DataInsufficientError struct {
	Indicator string
	Required  int
	Actual    int
}

func (e *DataInsufficientError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d points, got %d",
		e.Indicator, e.Required, e.Actual)
}

// NewDataInsufficientError creates a DataInsufficientError for an indicator.
func NewDataInsufficientError(indicator string, required, actual int) *DataInsufficientError {
	return &DataInsufficientError{
		Indicator: indicator,
		Required:  required,
		Actual:    actual,
	}
}
