package synonyms

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default_groups.toml
var defaultGroupsTOML []byte

// Group is one set of forms that all denote the same concept.
type Group struct {
	Forms []string `toml:"forms"`
}

type tableDocument struct {
	Groups []Group `toml:"groups"`
}

// DefaultTable returns the synonym groups shipped with the binary.
func DefaultTable() []Group {
	groups, err := parseTable(defaultGroupsTOML)
	if err != nil {
		// The embedded table is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("synonyms: embedded table invalid: %v", err))
	}
	return groups
}

// LoadTable reads synonym groups from a TOML file.
func LoadTable(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonym table: %w", err)
	}
	groups, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("parse synonym table %s: %w", path, err)
	}
	return groups, nil
}

func parseTable(data []byte) ([]Group, error) {
	var doc tableDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(doc.Groups))
	for i, group := range doc.Groups {
		forms := make([]string, 0, len(group.Forms))
		for _, form := range group.Forms {
			form = strings.ToLower(strings.TrimSpace(form))
			if form == "" {
				continue
			}
			forms = append(forms, form)
		}
		if len(forms) < 2 {
			return nil, fmt.Errorf("group %d needs at least two non-empty forms", i+1)
		}
		groups = append(groups, Group{Forms: forms})
	}
	return groups, nil
}
