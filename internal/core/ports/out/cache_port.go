package out

import "context"

type CachePort interface {
	// Кэширование результатов поиска слотов по дате и специальности
	GetSlots(ctx context.Context, date, speciality string) (map[string][]string, bool)
	StoreSlots(ctx context.Context, date, speciality string, slots map[string][]string)

	// Инвалидация при изменении расписаний и состава врачей
	InvalidateDate(ctx context.Context, date string)
	Purge(ctx context.Context)
}
