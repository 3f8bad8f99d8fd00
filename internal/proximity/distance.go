// Package proximity реализует поиск поставщиков рядом с точкой: проверку запроса,
// расчет расстояний, фильтрацию, ранжирование и постраничную выдачу.
// Пакет не выполняет ввод-вывод и не хранит состояние между вызовами.
package proximity

import (
	"math"

	"github.com/akozadaev/rawgle/internal/models"
)

// EarthRadiusKM - средний радиус Земли, км. Все расстояния пакета в километрах.
const EarthRadiusKM = 6371.0

// DistanceKM вычисляет расстояние по дуге большого круга между двумя точками (формула гаверсинуса).
func DistanceKM(a, b models.GeoPoint) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// погрешность округления у антиподов может вывести h за [0, 1]
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h))
}

// RoundDistance округляет расстояние до двух знаков после запятой.
func RoundDistance(km float64) float64 {
	return math.Round(km*100) / 100
}
