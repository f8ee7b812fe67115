package settings

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"fieldpilot/internal/usecase/interfaces"
)

// EnvScheduleSettings reads the admin's blocked weekdays from the
// environment. The format is a comma-separated list of weekday numbers,
// 0 = Sunday through 6 = Saturday, e.g. BLOCKED_WEEKDAYS=0,6.

type EnvScheduleSettings struct {
	envKey string
}

var _ interfaces.IScheduleSettings = (*EnvScheduleSettings)(nil)

func NewEnvScheduleSettings() *EnvScheduleSettings {
	return &EnvScheduleSettings{envKey: "BLOCKED_WEEKDAYS"}
}

func (s *EnvScheduleSettings) UnavailableWeekdays(_ context.Context) ([]int, error) {
	raw := strings.TrimSpace(os.Getenv(s.envKey))
	if raw == "" {
		return nil, nil
	}

	seen := map[int]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wd, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid weekday %q", s.envKey, part)
		}
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("%s: weekday %d out of range 0..6", s.envKey, wd)
		}
		seen[wd] = struct{}{}
	}

	days := make([]int, 0, len(seen))
	for wd := range seen {
		days = append(days, wd)
	}
	sort.Ints(days)
	return days, nil
}
