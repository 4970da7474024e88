package config

import (
	"net/url"
	"time"
)

// Duration is a time.Duration that supports Text(Un)Marshaler
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	n, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

type URL string

func (u URL) URL() *url.URL {
	// any file-based configuration will go through UnmarshalText
	// for the URL type, and the defaults are tested in the
	// roundtrip test, so there should be no way for a URL value
	// to be a string that doesn't url.Parse correctly.
	uri, err := url.Parse(string(u))
	if err != nil {
		panic("unreachable: unless you did something stupid")
	}
	return uri
}

func (u URL) String() string {
	return string(u)
}

func (u URL) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	_, err := url.Parse(string(text))
	if err != nil {
		return err
	}
	*u = URL(text)
	return nil
}
