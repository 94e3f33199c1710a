package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
}

type Ingredients []Ingredient

func (i Ingredients) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *Ingredients) Scan(value interface{}) error {
	return scanJSON(value, i)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type Recipe struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Ingredients     Ingredients `gorm:"type:jsonb" json:"ingredients"`
	Instructions    StringList  `gorm:"type:jsonb" json:"instructions"`
	PrepTimeMinutes int         `json:"prep_time_minutes"`
	CookTimeMinutes int         `json:"cook_time_minutes"`
	Servings        int         `json:"servings"`
	ImageURL        string      `json:"image_url,omitempty"`
	Tags            StringList  `gorm:"type:jsonb" json:"tags,omitempty"`

	Timestamp
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for jsonb column")
	}
}
