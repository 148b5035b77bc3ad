package domain

// ActionRequest is the JSON structure the model replies with when answering
// a request needs system information first.
type ActionRequest struct {
	Action      string         `json:"action"`
	Parameters  map[string]any `json:"parameters"`
	Explanation string         `json:"explanation"`
}

type DataType string

const (
	String  DataType = "string"
	Number  DataType = "number"
	Integer DataType = "integer"
	Boolean DataType = "boolean"
)

// Definition declares the parameters an action accepts.
type Definition struct {
	Properties map[string]Property
	Required   []string
}

type Property struct {
	Type        DataType
	Description string
}
