package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/akozadaev/rawgle/internal/models"
	"github.com/akozadaev/rawgle/internal/proximity"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// generateOptions задает параметры генерации тестового справочника.
type generateOptions struct {
	Count    int
	Lat      float64
	Lng      float64
	SpreadKM float64
	Seed     int64
}

func newGenerateCmd() *cobra.Command {
	var (
		opts generateOptions
		out  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample suppliers scattered around a centre point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Count <= 0 {
				return fmt.Errorf("count must be positive, got %d", opts.Count)
			}
			if opts.Seed == 0 {
				opts.Seed = time.Now().UnixNano()
			}

			data, err := json.MarshalIndent(generateSuppliers(opts), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode suppliers: %w", err)
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d suppliers to %s\n", opts.Count, out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 100, "number of suppliers")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	cmd.Flags().Float64Var(&opts.Lat, "lat", 51.4816, "centre latitude")
	cmd.Flags().Float64Var(&opts.Lng, "lng", -3.1791, "centre longitude")
	cmd.Flags().Float64Var(&opts.SpreadKM, "spread", 150, "maximum distance from the centre, km")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed, 0 means time based")
	return cmd
}

type sampleCity struct {
	City    string
	State   string
	Country string
}

var (
	sampleCities = []sampleCity{
		{"Cardiff", "Wales", "UK"},
		{"Newport", "Wales", "UK"},
		{"Swansea", "Wales", "UK"},
		{"Bristol", "England", "UK"},
		{"Bath", "England", "UK"},
		{"Gloucester", "England", "UK"},
	}
	namePrefixes = []string{"Raw", "Wild", "Natural", "Prime", "Green Valley", "Barking", "Whisker", "Farmhouse"}
	nameSuffixes = []string{"Pet Foods", "Raw Feeding", "Butchers", "Paws Kitchen", "Pet Pantry", "Supplies"}
	speciesList  = []models.Species{models.SpeciesDogs, models.SpeciesCats, models.SpeciesBoth}
	streets      = []string{"High Street", "Station Road", "Church Lane", "Mill Road", "Park Avenue"}
)

// generateSuppliers создает opts.Count поставщиков в пределах opts.SpreadKM от центра.
// При одинаковом Seed результат детерминирован.
func generateSuppliers(opts generateOptions) []models.Supplier {
	rng := rand.New(rand.NewSource(opts.Seed))
	updated := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	suppliers := make([]models.Supplier, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			id = uuid.New()
		}
		city := sampleCities[rng.Intn(len(sampleCities))]
		species := speciesList[rng.Intn(len(speciesList))]

		s := models.Supplier{
			ID:                id.String(),
			Name:              fmt.Sprintf("%s %s", namePrefixes[rng.Intn(len(namePrefixes))], nameSuffixes[rng.Intn(len(nameSuffixes))]),
			Address:           fmt.Sprintf("%d %s", 1+rng.Intn(200), streets[rng.Intn(len(streets))]),
			City:              city.City,
			State:             city.State,
			Country:           city.Country,
			Location:          offsetPoint(opts.Lat, opts.Lng, rng.Float64()*opts.SpreadKM, rng.Float64()*2*math.Pi),
			Species:           species,
			DeliveryAvailable: rng.Intn(2) == 0,
			PickupAvailable:   rng.Intn(3) != 0,
			Description:       fmt.Sprintf("Raw food for %s in %s", species, city.City),
			UpdatedAt:         updated.Add(time.Duration(rng.Intn(365*24)) * time.Hour),
		}
		// часть поставщиков без рейтинга
		if rng.Intn(5) != 0 {
			rating := math.Round((1+rng.Float64()*4)*10) / 10
			s.Rating = &rating
			s.RatingCount = 1 + rng.Intn(300)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers
}

// offsetPoint смещает точку на distKM по азимуту bearing (радианы).
func offsetPoint(lat, lng, distKM, bearing float64) models.GeoPoint {
	lat1 := lat * math.Pi / 180
	lng1 := lng * math.Pi / 180
	angular := distKM / proximity.EarthRadiusKM

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lng2 := lng1 + math.Atan2(math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1), math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	lon := math.Mod(lng2*180/math.Pi+540, 360) - 180
	return models.GeoPoint{Lat: lat2 * 180 / math.Pi, Lon: lon}
}
