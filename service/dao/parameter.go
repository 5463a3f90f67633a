package dao

// Report filter names understood by List.
const (
	ParamRunID    = "RunID"
	ParamInstance = "Instance"
	ParamVariant  = "Variant"
	ParamFailed   = "Failed"
)

// Parameter is a List filter; Value is a string, a []string of alternatives or a bool.
type Parameter struct {
	Name  string
	Value interface{}
}

func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
