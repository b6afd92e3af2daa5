package migration

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// jsonColumn maps a raw dump fragment onto a JSON column, keeping NULL for
// absent values instead of storing the string "null".
func jsonColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
