package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func toJSONList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
