package usecase

import (
	"fmt"
	"time"
)

// timeContext describes the current moment in the configured timezone.
func (uc *implUseCase) timeContext() string {
	return buildTimeContext(uc.now().In(uc.loc))
}

func buildTimeContext(now time.Time) string {
	// Weeks run Monday to Sunday.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(time.RFC3339),
		now.Weekday().String(),
		now.Location().String(),
		now.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
	)
}
