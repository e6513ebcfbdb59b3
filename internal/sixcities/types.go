package sixcities

import (
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
)

// Location is a point on the map together with the zoom level the site uses
// when centering on it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// Cell returns the geohash cell that contains the location. Higher zoom
// levels yield longer (smaller) cells.
func (l Location) Cell() string {
	return geohash.EncodeWithPrecision(l.Latitude, l.Longitude, cellPrecision(l.Zoom))
}

func cellPrecision(zoom int) uint {
	switch {
	case zoom <= 0:
		return 5
	case zoom < 10:
		return 4
	case zoom < 13:
		return 5
	case zoom < 16:
		return 6
	default:
		return 7
	}
}

// City is one of the fixed destinations the site lists offers for.
type City struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Host describes the person renting out an offer.
type Host struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// Offer mirrors a single rental listing returned by /offers.
type Offer struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
	City         City     `json:"city"`
	Location     Location `json:"location"`
	IsPremium    bool     `json:"isPremium"`
	IsFavorite   bool     `json:"isFavorite"`
	PreviewImage string   `json:"previewImage"`
	Host         Host     `json:"host"`
	Images       []string `json:"images"`
	Goods        []string `json:"goods"`
	Description  string   `json:"description"`
	Bedrooms     int      `json:"bedrooms"`
	MaxAdults    int      `json:"maxAdults"`
}

// RoundedRating returns the star count shown next to an offer.
func (o Offer) RoundedRating() int {
	return int(o.Rating + 0.5)
}

// InCity reports whether the offer belongs to the named city.
func (o Offer) InCity(name string) bool {
	return strings.EqualFold(strings.TrimSpace(o.City.Name), strings.TrimSpace(name))
}

// User is the public profile attached to a comment.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// Comment is a review left on an offer.
type Comment struct {
	ID     int     `json:"id"`
	Author User    `json:"user"`
	Text   string  `json:"comment"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"`
}

// ParsedDate returns the comment date, or the zero time when it cannot be parsed.
func (c Comment) ParsedDate() time.Time {
	return parseTime(c.Date)
}

// AuthorizedUser is the signed-in account, including its session token.
type AuthorizedUser struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Token     string `json:"token"`
}

// CommentPost is the payload of a new review for offer ID. ID is carried in
// the request path, not the body.
type CommentPost struct {
	ID      int    `json:"-"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// Credentials are submitted to POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
