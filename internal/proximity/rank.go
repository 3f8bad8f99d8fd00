package proximity

import (
	"cmp"
	"slices"
	"strings"

	"github.com/akozadaev/rawgle/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank возвращает новый срез кандидатов, упорядоченный по ключу sortKey.
// При равенстве основного ключа порядок определяется идентификатором поставщика.
func Rank(candidates []Candidate, sortKey models.SortKey) []Candidate {
	ranked := slices.Clone(candidates)

	var primary func(a, b *Candidate) int
	switch sortKey {
	case models.SortByRating:
		primary = func(a, b *Candidate) int {
			return cmp.Compare(b.Supplier.RatingOrZero(), a.Supplier.RatingOrZero())
		}
	case models.SortByDistance:
		primary = func(a, b *Candidate) int {
			return cmp.Compare(a.DistanceKM, b.DistanceKM)
		}
	default:
		// Collator хранит буферы и не безопасен для конкурентного использования
		collator := collate.New(language.English)
		primary = func(a, b *Candidate) int {
			if c := collator.CompareString(a.Supplier.Name, b.Supplier.Name); c != 0 {
				return c
			}
			return strings.Compare(a.Supplier.Name, b.Supplier.Name)
		}
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		if c := primary(&a, &b); c != 0 {
			return c
		}
		return strings.Compare(a.Supplier.ID, b.Supplier.ID)
	})
	return ranked
}
