package resource

import (
	"errors"
	"strings"
)

var (
	ErrEmptyProvider    = errors.New("provider cannot be empty")
	ErrEmptyServiceCode = errors.New("service code cannot be empty")
	ErrEmptyCode        = errors.New("resource code cannot be empty")
	ErrCodeTooLong      = errors.New("resource code is too long (max 255 characters)")
	ErrInvalidStatus    = errors.New("invalid resource status")
)

const (
	MaxCodeLength = 255
)

// Provider identifies the external organisation supplying resources, e.g. DUOLINGO.
type Provider string

func NewProvider(s string) (Provider, error) {
	s = normalize(s)
	if s == "" {
		return "", ErrEmptyProvider
	}
	return Provider(s), nil
}

func (p Provider) String() string {
	return string(p)
}

// ServiceCode identifies a service offered by a provider.
type ServiceCode string

func NewServiceCode(s string) (ServiceCode, error) {
	s = normalize(s)
	if s == "" {
		return "", ErrEmptyServiceCode
	}
	return ServiceCode(s), nil
}

func (s ServiceCode) String() string {
	return string(s)
}

// Key is the (provider, service code) pair a service is registered under.
type Key struct {
	Provider    Provider
	ServiceCode ServiceCode
}

func NewKey(provider, serviceCode string) (Key, error) {
	p, err := NewProvider(provider)
	if err != nil {
		return Key{}, err
	}
	sc, err := NewServiceCode(serviceCode)
	if err != nil {
		return Key{}, err
	}
	return Key{Provider: p, ServiceCode: sc}, nil
}

func (k Key) String() string {
	return string(k.Provider) + "::" + string(k.ServiceCode)
}

// Code is the externally meaningful resource code. Comparison is case-sensitive.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCode
	}
	if len(s) > MaxCodeLength {
		return "", ErrCodeTooLong
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAssigned  Status = "ASSIGNED"
	StatusDisabled  Status = "DISABLED"
	StatusExpired   Status = "EXPIRED"
	StatusRedeemed  Status = "REDEEMED"
)

func ParseStatus(s string) (Status, error) {
	status := Status(normalize(s))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusDisabled, StatusExpired, StatusRedeemed:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
