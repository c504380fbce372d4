package ingestors

import (
	"errors"
	"fmt"

	"tracking-pixel/internal/models"

	"github.com/mileusna/useragent"
)

const (
	ValueUnknown = "Unknown"

	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceBot     = "Bot"
	DeviceDesktop = "Desktop"
)

var ErrUAClassificationFailed = errors.New("user agent classification failed")

// UAClassifier derives browser, OS and device type from a raw user-agent string.
// It never panics; on failure every facet falls back to its default and an error is returned
// for diagnostics only.
//
//go:generate mockgen -source=ua_classifier.go -destination=./mocks/ua_classifier_mock.go -package=mocks
type UAClassifier interface {
	Classify(ua string) (models.ClientAttributes, error)
}

type uaClassifier struct {
	defaultDevice string
	parse         func(string) useragent.UserAgent
}

// NewUAClassifier returns a classifier that reports defaultDevice when the device type
// cannot be determined.
func NewUAClassifier(defaultDevice string) UAClassifier {
	if defaultDevice == "" {
		defaultDevice = ValueUnknown
	}
	return &uaClassifier{defaultDevice: defaultDevice, parse: useragent.Parse}
}

func (c *uaClassifier) Classify(ua string) (attrs models.ClientAttributes, err error) {
	if ua == "" {
		return c.fallback(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			attrs = c.fallback()
			err = fmt.Errorf("%w: %v", ErrUAClassificationFailed, r)
		}
	}()

	parsed := c.parse(ua)
	return models.ClientAttributes{
		Browser: orUnknown(parsed.Name),
		OS:      orUnknown(parsed.OS),
		Device:  c.deviceType(parsed),
	}, nil
}

func (c *uaClassifier) deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Bot:
		return DeviceBot
	case ua.Tablet:
		return DeviceTablet
	case ua.Mobile:
		return DeviceMobile
	case ua.Desktop:
		return DeviceDesktop
	default:
		return c.defaultDevice
	}
}

func (c *uaClassifier) fallback() models.ClientAttributes {
	return models.ClientAttributes{Browser: ValueUnknown, OS: ValueUnknown, Device: c.defaultDevice}
}

func orUnknown(s string) string {
	if s == "" {
		return ValueUnknown
	}
	return s
}
