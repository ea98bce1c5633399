package services

import (
	"fmt"
	"regexp"
	"strings"

	"teamcalendar/internal/domain"
)

// Colors are stored as #RRGGBB or #RRGGBBAA.
var hexColorRegexp = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

func requireName(field string, value *string) error {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	return nil
}

func requireColor(field, value string) error {
	if !hexColorRegexp.MatchString(value) {
		return fmt.Errorf("%w: %s must be a hex color like #1e90ff", domain.ErrInvalidInput, field)
	}
	return nil
}

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// uniqueIDs drops duplicates and keeps first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
