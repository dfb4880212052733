package cache

import (
	"career-globe-service/internal/domain"
	"fmt"
	"strings"
)

// uniqueKeys trims, drops empties and deduplicates while keeping order.
func uniqueKeys(keys []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}

func validateLeg(l domain.Leg) error {
	if strings.TrimSpace(l.FromID) == "" || strings.TrimSpace(l.ToID) == "" {
		return fmt.Errorf("leg %q: from and to ids must not be empty", l.Key())
	}
	if strings.ContainsAny(l.FromID+l.ToID, "|@") {
		return fmt.Errorf("leg %q: ids must not contain '|' or '@'", l.Key())
	}
	return nil
}
