package database

import (
	"fmt"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/geo"
)

// Location is a saved, named observer position.
type Location struct {
	ID        string    `json:"id" yaml:"id,omitempty"`
	Name      string    `json:"name" yaml:"name"`
	Latitude  float64   `json:"latitude" yaml:"latitude"`
	Longitude float64   `json:"longitude" yaml:"longitude"`
	Elevation float64   `json:"elevation" yaml:"elevation"`
	Timezone  string    `json:"timezone" yaml:"timezone"`
	InIsrael  bool      `json:"in_israel" yaml:"in_israel"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// Geo converts the row into a validated geo.Location. It fails when the
// coordinates are out of range or the timezone is unknown.
func (l *Location) Geo() (geo.Location, error) {
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return geo.Location{}, fmt.Errorf("%w: timezone %q: %v", geo.ErrInvalidLocation, l.Timezone, err)
	}
	return geo.New(l.Name, l.Latitude, l.Longitude, l.Elevation, tz)
}

// Validate checks the fields a caller supplies before insert or update.
func (l *Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", geo.ErrInvalidLocation)
	}
	_, err := l.Geo()
	return err
}
