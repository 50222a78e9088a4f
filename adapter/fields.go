package adapter

import (
	"maps"
	"slices"

	"github.com/philipp01105/taglog/core"
)

// sortedFields converts a key/value map into fields ordered by key.
func sortedFields(m map[string]any) []core.Field {
	if len(m) == 0 {
		return nil
	}
	fields := make([]core.Field, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fields = append(fields, core.F(k, m[k]))
	}
	return fields
}

func callerInfo(file string, line int, function string) *core.CallerInfo {
	return &core.CallerInfo{
		File:     file,
		Line:     line,
		Function: function,
		Defined:  function != "",
	}
}
