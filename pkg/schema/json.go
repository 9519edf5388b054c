package schema

import (
	"encoding/json"
	"os"
)

// ToJSON renders the schema as JSON.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToJSONIndent renders the schema as indented JSON, the form the CLI prints.
func (s *Schema) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ParseJSON builds a schema from JSON bytes.
func ParseJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFromJSON reads a schema from a JSON file.
func LoadFromJSON(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

// SaveToJSON writes the schema to a JSON file with indentation.
func (s *Schema) SaveToJSON(path string) error {
	data, err := s.ToJSONIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
