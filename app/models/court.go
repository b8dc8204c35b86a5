package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tier phân loại thành phố theo quy mô (major, medium, small)
type Tier string

const (
	TierMajor  Tier = "major"
	TierMedium Tier = "medium"
	TierSmall  Tier = "small"
)

// Tiers liệt kê các tier theo thứ tự seed
var Tiers = []Tier{TierMajor, TierMedium, TierSmall}

// Hours giờ mở cửa cố định của tier
func (t Tier) Hours() string {
	switch t {
	case TierMajor:
		return "6:00 am - 10:00 pm"
	case TierMedium, TierSmall:
		return "7:00 am - 9:00 pm"
	}
	return ""
}

// PhoneNumber số điện thoại placeholder của tier
func (t Tier) PhoneNumber() string {
	switch t {
	case TierMajor:
		return "555-0100"
	case TierMedium:
		return "555-0200"
	case TierSmall:
		return "555-0300"
	}
	return ""
}

// Label nhãn hiển thị trong coverage summary
func (t Tier) Label() string {
	switch t {
	case TierMajor:
		return "Major cities"
	case TierMedium:
		return "Medium cities"
	case TierSmall:
		return "Smaller cities"
	}
	return string(t)
}

// IsValid kiểm tra tier có hợp lệ không
func (t Tier) IsValid() bool {
	for _, valid := range Tiers {
		if t == valid {
			return true
		}
	}
	return false
}

// CourtRecord là một sân bóng rổ trong collection courts.
// Field names khớp với document mà app mobile đọc (camelCase).
type CourtRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Address            string             `bson:"address" json:"address"`
	Latitude           float64            `bson:"latitude" json:"latitude"`
	Longitude          float64            `bson:"longitude" json:"longitude"`
	Hours              string             `bson:"hours" json:"hours"`
	PhoneNumber        string             `bson:"phoneNumber" json:"phoneNumber"`
	Rating             float64            `bson:"rating" json:"rating"`
	CurrentPlayers     int                `bson:"currentPlayers" json:"currentPlayers"`
	AveragePlayers     int                `bson:"averagePlayers" json:"averagePlayers"`
	PublicUsersAtCourt []string           `bson:"publicUsersAtCourt" json:"publicUsersAtCourt"`
	Image              *string            `bson:"image" json:"image"`
}

// NewCourtRecord tạo record mới với các giá trị mặc định của tier.
// CurrentPlayers = 0, PublicUsersAtCourt rỗng (không nil), Image = nil.
func NewCourtRecord(tier Tier, name, address string, latitude, longitude, rating float64, averagePlayers int) CourtRecord {
	return CourtRecord{
		Name:               name,
		Address:            address,
		Latitude:           latitude,
		Longitude:          longitude,
		Hours:              tier.Hours(),
		PhoneNumber:        tier.PhoneNumber(),
		Rating:             rating,
		CurrentPlayers:     0,
		AveragePlayers:     averagePlayers,
		PublicUsersAtCourt: []string{},
		Image:              nil,
	}
}
