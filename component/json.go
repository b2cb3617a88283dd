// File: json.go
// Role: minimal JSON form carrying only the class identity.

package component

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/periodicity"
)

// Identity written by MarshalJSON.
const (
	ModuleName = "github.com/katalvlaran/lvperiodic/component"
	ClassName  = "ConnectedComponent"
)

type descriptor struct {
	Module string `json:"@module"`
	Class  string `json:"@class"`
}

// MarshalJSON writes {"@module": ModuleName, "@class": ClassName}. The graph
// and the cached periodicity are not included.
func (c *Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(descriptor{Module: ModuleName, Class: ClassName})
}

// UnmarshalJSON resets c to an empty component with a new ID and the
// default algorithm. A document naming another @class is rejected with
// ErrUnknownClass.
func (c *Component) UnmarshalJSON(data []byte) error {
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("component: decode: %w", err)
	}
	if d.Class != "" && d.Class != ClassName {
		return fmt.Errorf("%w: %q", ErrUnknownClass, d.Class)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = uuid.New()
	c.graph = core.NewGraph()
	c.algorithm = periodicity.DefaultAlgorithm
	c.logger = zap.NewNop()
	c.metrics = nil
	c.cache = nil
	c.result = nil

	return nil
}
