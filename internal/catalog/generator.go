package catalog

import (
	"fmt"
	"math"

	"github.com/court-finder/app/models"
)

// Generate mở rộng catalog thành danh sách CourtRecord phẳng.
// Thứ tự: toàn bộ major (theo thành phố rồi theo tọa độ), medium, small.
// Hàm thuần: không I/O, không random, cùng input cho cùng output.
func Generate(c *Catalog) []models.CourtRecord {
	courts := make([]models.CourtRecord, 0, c.TotalCourts())

	for _, city := range c.Major {
		for i, coord := range city.Coords {
			courts = append(courts, majorCourt(city, i, coord))
		}
	}

	for _, city := range c.Medium {
		for i, coord := range city.Coords {
			courts = append(courts, mediumCourt(city, i, coord))
		}
	}

	for _, city := range c.Small {
		for i, coord := range city.Coords {
			courts = append(courts, smallCourt(city.City, i, coord))
		}
	}

	return courts
}

func majorCourt(city CityCourts, i int, coord Coordinate) models.CourtRecord {
	cityName, _ := SplitCity(city.City)
	courtName := nameAt(city.Names, i, fmt.Sprintf("Court %d", i+1))

	return models.NewCourtRecord(
		models.TierMajor,
		fmt.Sprintf("%s - %s", courtName, cityName),
		fmt.Sprintf("%s, %s", courtName, city.City),
		coord.Latitude,
		coord.Longitude,
		MajorRating(i),
		12+i%15,
	)
}

func mediumCourt(city CityCourts, i int, coord Coordinate) models.CourtRecord {
	cityName, _ := SplitCity(city.City)
	courtName := nameAt(city.Names, i, fmt.Sprintf("%s Court %d", cityName, i+1))

	return models.NewCourtRecord(
		models.TierMedium,
		courtName,
		fmt.Sprintf("%s, %s", courtName, city.City),
		coord.Latitude,
		coord.Longitude,
		MediumRating(i),
		8+i%10,
	)
}

func smallCourt(city string, i int, coord Coordinate) models.CourtRecord {
	return models.NewCourtRecord(
		models.TierSmall,
		fmt.Sprintf("%s Recreation Center %d", city, i+1),
		fmt.Sprintf("Recreation Center, %s", city),
		coord.Latitude,
		coord.Longitude,
		SmallRating(i),
		8+i*3,
	)
}

// nameAt lấy tên theo vị trí, thiếu thì dùng fallback
func nameAt(names []string, i int, fallback string) string {
	if i < len(names) {
		return names[i]
	}
	return fallback
}

// MajorRating = round(4.0 + (i mod 10) * 0.1, 1)
func MajorRating(i int) float64 {
	return math.Round((4.0+float64(i%10)*0.1)*10) / 10
}

// MediumRating = 4.0 + (i mod 5) * 0.2, không làm tròn
func MediumRating(i int) float64 {
	return 4.0 + float64(i%5)*0.2
}

// SmallRating = 4.0 + i * 0.2
func SmallRating(i int) float64 {
	return 4.0 + float64(i)*0.2
}
