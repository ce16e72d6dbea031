// Package geoip resolves client addresses to country names using a
// MaxMind database.
package geoip

import (
	"errors"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnresolvable is returned when an address cannot be mapped to a country.
var ErrUnresolvable = errors.New("geoip: address could not be resolved")

// Resolver maps an IP address to an English country name.
type Resolver interface {
	Country(ip string) (string, error)
}

// MaxMindResolver resolves countries against a GeoLite2/GeoIP2 database
// file.
type MaxMindResolver struct {
	reader *geoip2.Reader
}

// Open opens the MaxMind database at the given path.
func Open(path string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: failed to open database %s: %w", path, err)
	}
	return &MaxMindResolver{reader: reader}, nil
}

// Country returns the English country name for the given address.
func (r *MaxMindResolver) Country(ip string) (string, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("%w: %q is not a valid address", ErrUnresolvable, ip)
	}

	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvable, err)
	}

	name := record.Country.Names["en"]
	if name == "" {
		return "", fmt.Errorf("%w: no country for %s", ErrUnresolvable, ip)
	}
	return name, nil
}

// Close releases the underlying database reader.
func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}
