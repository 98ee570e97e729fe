package domain

type Doctor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Speciality string `json:"speciality"`

	schedules map[string][]string
}

func NewDoctor(id, name, surname, speciality string) *Doctor {
	return &Doctor{
		ID:         id,
		Name:       name,
		Surname:    surname,
		Speciality: speciality,
		schedules:  make(map[string][]string),
	}
}

func (d *Doctor) Is(speciality string) bool {
	return d.Speciality == speciality
}

// AddDailySchedule генерирует слоты в пределах доступного времени и добавляет
// их в конец расписания на эту дату. Остаток, не кратный длительности слота,
// отбрасывается. Возвращает количество только что добавленных слотов.
func (d *Doctor) AddDailySchedule(date string, start, end ClockMinutes, duration int) int {
	numSlots := (int(end) - int(start)) / duration

	cursor := start
	for i := 0; i < numSlots; i++ {
		slotEnd := cursor + ClockMinutes(duration)
		d.schedules[date] = append(d.schedules[date], FormatSlot(cursor, slotEnd))
		cursor = slotEnd
	}

	return numSlots
}

func (d *Doctor) HasSchedule(date string) bool {
	_, exists := d.schedules[date]
	return exists
}

// Schedule возвращает метки слотов на дату в порядке генерации.
func (d *Doctor) Schedule(date string) ([]string, bool) {
	slots, exists := d.schedules[date]
	return slots, exists
}

// TotalSlots - количество слотов, сгенерированных за все даты.
func (d *Doctor) TotalSlots() int {
	total := 0
	for _, slots := range d.schedules {
		total += len(slots)
	}
	return total
}
