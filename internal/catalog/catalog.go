// Package catalog chứa danh sách sân bóng rổ toàn quốc (dữ liệu tĩnh, embed YAML)
// và bộ sinh CourtRecord từ danh sách đó.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/court-finder/app/models"
	"gopkg.in/yaml.v3"
)

// Coordinate cặp [latitude, longitude]
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// UnmarshalYAML đọc coordinate dạng [lat, lon]
func (c *Coordinate) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: coordinate cần đúng 2 giá trị [lat, lon], nhận %d", node.Line, len(pair))
	}
	c.Latitude, c.Longitude = pair[0], pair[1]
	return nil
}

// MarshalYAML ghi coordinate dạng [lat, lon]
func (c Coordinate) MarshalYAML() (interface{}, error) {
	return []float64{c.Latitude, c.Longitude}, nil
}

// CityCourts một thành phố major/medium: danh sách tọa độ và tên sân theo vị trí
type CityCourts struct {
	City   string       `yaml:"city" json:"city"`
	Coords []Coordinate `yaml:"coords" json:"coords"`
	Names  []string     `yaml:"names" json:"names"`
}

// SmallCity một thành phố nhỏ, chỉ có tọa độ
type SmallCity struct {
	City   string       `yaml:"city" json:"city"`
	Coords []Coordinate `yaml:"coords" json:"coords"`
}

// Catalog ba bảng thành phố theo thứ tự khai báo trong file
type Catalog struct {
	Major  []CityCourts `yaml:"major"`
	Medium []CityCourts `yaml:"medium"`
	Small  []SmallCity  `yaml:"small"`
}

var (
	embeddedOnce    sync.Once
	embeddedCatalog *Catalog
	embeddedErr     error
)

// Load trả về bản copy của catalog embed. Parse chỉ chạy một lần mỗi process.
func Load() (*Catalog, error) {
	embeddedOnce.Do(func() {
		embeddedCatalog, embeddedErr = Parse(citiesYAML)
	})
	if embeddedErr != nil {
		return nil, fmt.Errorf("lỗi đọc catalog embed: %w", embeddedErr)
	}
	return embeddedCatalog.Clone(), nil
}

// MustLoad giống Load nhưng panic khi lỗi
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse đọc catalog từ YAML
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clone deep copy, caller có thể sửa thoải mái
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Major:  cloneCities(c.Major),
		Medium: cloneCities(c.Medium),
		Small:  make([]SmallCity, len(c.Small)),
	}
	for i, city := range c.Small {
		out.Small[i] = SmallCity{
			City:   city.City,
			Coords: append([]Coordinate(nil), city.Coords...),
		}
	}
	return out
}

func cloneCities(cities []CityCourts) []CityCourts {
	out := make([]CityCourts, len(cities))
	for i, city := range cities {
		out[i] = CityCourts{
			City:   city.City,
			Coords: append([]Coordinate(nil), city.Coords...),
			Names:  append([]string(nil), city.Names...),
		}
	}
	return out
}

// CityCount số thành phố khai báo trong tier
func (c *Catalog) CityCount(tier models.Tier) int {
	switch tier {
	case models.TierMajor:
		return len(c.Major)
	case models.TierMedium:
		return len(c.Medium)
	case models.TierSmall:
		return len(c.Small)
	}
	return 0
}

// CourtCount tổng số tọa độ của tier, bằng số record được sinh ra
func (c *Catalog) CourtCount(tier models.Tier) int {
	total := 0
	switch tier {
	case models.TierMajor:
		for _, city := range c.Major {
			total += len(city.Coords)
		}
	case models.TierMedium:
		for _, city := range c.Medium {
			total += len(city.Coords)
		}
	case models.TierSmall:
		for _, city := range c.Small {
			total += len(city.Coords)
		}
	}
	return total
}

// TotalCourts tổng số record của cả ba tier
func (c *Catalog) TotalCourts() int {
	total := 0
	for _, tier := range models.Tiers {
		total += c.CourtCount(tier)
	}
	return total
}

// SplitCity tách "City, ST" thành (City, ST).
// Key không có ", " trả về nguyên key và state rỗng.
func SplitCity(key string) (city, state string) {
	if idx := strings.Index(key, ", "); idx >= 0 {
		return key[:idx], key[idx+2:]
	}
	return key, ""
}
