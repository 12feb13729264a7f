package model

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// AllOperators selects every operator.
const AllOperators = "All"

// OperatorSelection is the canonical form of an operator filter. It decodes
// from either a bare string or an {"operator": ...} object, the two shapes a
// dropdown may hand over.
type OperatorSelection struct {
	Operator string `json:"operator" yaml:"operator"`
}

// Operator returns the normalized selection for name. Blank names select all.
func Operator(name string) OperatorSelection {
	name = strings.TrimSpace(name)
	if name == "" {
		name = AllOperators
	}
	return OperatorSelection{Operator: name}
}

// IsAll reports whether the selection passes every operator through.
func (s OperatorSelection) IsAll() bool {
	return s.Operator == "" || s.Operator == AllOperators
}

// Matches reports whether a record owned by op passes the filter.
func (s OperatorSelection) Matches(op string) bool {
	return s.IsAll() || op == s.Operator
}

// String returns the operator name.
func (s OperatorSelection) String() string {
	if s.Operator == "" {
		return AllOperators
	}
	return s.Operator
}

// UnmarshalJSON accepts "name" or {"operator": "name"}.
func (s *OperatorSelection) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Operator(name)
		return nil
	}
	var obj struct {
		Operator string `json:"operator"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return eris.Wrap(err, "model: decode operator selection")
	}
	*s = Operator(obj.Operator)
	return nil
}
