package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockMinutes - время суток в минутах от полуночи.
type ClockMinutes int

// ParseClock парсит строку вида "HH:MM" (24 часа, с ведущими нулями).
func ParseClock(str string) (ClockMinutes, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse clock %q: %w", str, ErrInvalidTimeRange)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", str, ErrInvalidTimeRange)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", str, ErrInvalidTimeRange)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("parse clock %q: %w", str, ErrInvalidTimeRange)
	}

	return ClockMinutes(hours*60 + minutes), nil
}

func (m ClockMinutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// FormatSlot форматирует метку слота "HH:MM-HH:MM".
func FormatSlot(start, end ClockMinutes) string {
	return start.String() + "-" + end.String()
}
