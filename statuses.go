package printforge

// StatusAccepted is the initial status id for newly created orders.
const StatusAccepted = 6

// Well-known status ids as the backend catalog defines them.
const (
	StatusInProgress    = 1
	StatusCompleted     = 2
	StatusCancelled     = 3
	StatusInfoChanged   = 8
	StatusInfoRequested = 10
	StatusPrinted       = 11
	StatusFilamentUsed  = 12
	StatusInDesign      = 13
)

type statusName struct {
	en string
	ru string
}

// statusNames mirrors the backend catalog so order lists stay renderable
// when the catalog endpoint is unreachable or lags behind.
var statusNames = map[int]statusName{
	StatusInProgress:    {en: "In Progress", ru: "В процессе"},
	StatusCompleted:     {en: "Completed", ru: "Завершён"},
	StatusCancelled:     {en: "Cancelled", ru: "Отменён"},
	StatusAccepted:      {en: "Accepted", ru: "Принят"},
	StatusInfoChanged:   {en: "Information Changed", ru: "Изменена информация"},
	StatusInfoRequested: {en: "Additional Info Requested", ru: "Запрошена дополнительная информация"},
	StatusPrinted:       {en: "Printed", ru: "Распечатано"},
	StatusFilamentUsed:  {en: "Filament Consumed", ru: "Потрачен филамент"},
	StatusInDesign:      {en: "In Design", ru: "В проектировании"},
}

// StatusName returns the description for a status id in the given language
// ("en" or "ru", defaulting to "ru"). Unknown ids yield "Unknown".
func StatusName(statusID int, language string) string {
	name, ok := statusNames[statusID]
	if !ok {
		if language == "en" {
			return "Unknown"
		}
		return "Неизвестно"
	}
	if language == "en" {
		return name.en
	}
	return name.ru
}
