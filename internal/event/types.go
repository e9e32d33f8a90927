package event

const (
	TowerPlaced         EventType = "TowerPlaced"         // Сервер принял установку
	PlacementRejected   EventType = "PlacementRejected"   // Сервер или сеть отказали
	StartRoundRequested EventType = "StartRoundRequested" // Запрос на начало волны отправлен
	StartRoundRejected  EventType = "StartRoundRejected"
)

// Notice — данные событий, которые показываются игроку.
// Info отличает обычное сообщение от ошибки.
type Notice struct {
	Message string
	Info    bool
}
