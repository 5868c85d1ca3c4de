package importservice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/acordos/internal/dto"
)

// LoadMappingFile reads a saved mapping. JSON files work too since JSON is
// valid YAML.
//
//	case:
//	  debtor_name: Nome
//	  value_causa: Valor da causa
//	alvara:
//	  valor_alvara: Alvará
func LoadMappingFile(path string) (dto.Mapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m dto.Mapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("can't parse mapping %s: %w", path, err)
	}
	return m, nil
}

// SaveMappingFile stores only the assigned fields.
func SaveMappingFile(path string, m dto.Mapping) error {
	out := make(dto.Mapping)
	for sec, fields := range m {
		for f, c := range fields {
			if c == "" {
				continue
			}
			if out[sec] == nil {
				out[sec] = make(map[string]string)
			}
			out[sec][f] = c
		}
	}
	raw, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
