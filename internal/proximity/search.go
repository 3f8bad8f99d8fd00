package proximity

import (
	"github.com/akozadaev/rawgle/internal/models"
)

// Nearby выполняет полный конвейер поиска поставщиков рядом с точкой:
// фильтрация, ранжирование, постраничная выдача.
func Nearby(suppliers []models.Supplier, q *models.ProximityQuery) *models.SearchResponse {
	ranked := Rank(FilterNearby(suppliers, q), q.Sort)
	resp := buildResponse(Paginate(ranked, q.Page, q.Limit), q.Page, q.Limit)
	resp.Center = &models.Center{Lat: q.Center.Lat, Lng: q.Center.Lon}
	resp.Radius = q.RadiusKM
	return resp
}

// Text выполняет полнотекстовый поиск без географического фильтра.
func Text(suppliers []models.Supplier, q *models.TextQuery) *models.SearchResponse {
	ranked := Rank(FilterText(suppliers, q), q.Sort)
	return buildResponse(Paginate(ranked, q.Page, q.Limit), q.Page, q.Limit)
}

func buildResponse(page Page[Candidate], pageNum, limit int) *models.SearchResponse {
	results := make([]models.RankedResult, 0, len(page.Items))
	for _, c := range page.Items {
		result := models.RankedResult{Supplier: c.Supplier}
		if c.hasDistance {
			d := RoundDistance(c.DistanceKM)
			result.Distance = &d
		}
		results = append(results, result)
	}

	return &models.SearchResponse{
		Results: results,
		Page:    pageNum,
		Limit:   limit,
		Total:   page.Total,
		HasMore: page.HasMore,
		Count:   len(results),
	}
}
