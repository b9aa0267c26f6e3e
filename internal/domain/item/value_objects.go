package item

import (
	"net/url"
	"strings"
)

const (
	MaxNameLength     = 200
	MaxCategoryLength = 100
	MaxImageURLLength = 2048
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Category struct {
	value string
}

func NewCategory(s string) (Category, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Category{}, ErrEmptyCategory
	}
	if len(t) > MaxCategoryLength {
		return Category{}, ErrCategoryTooLong
	}
	return Category{value: t}, nil
}

func (c Category) String() string { return c.value }

// ImageURL is optional; the zero value means "no image".
type ImageURL struct {
	value string
}

func NewImageURL(s string) (ImageURL, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ImageURL{}, nil
	}
	if len(t) > MaxImageURLLength {
		return ImageURL{}, ErrInvalidImageURL
	}
	u, err := url.Parse(t)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ImageURL{}, ErrInvalidImageURL
	}
	return ImageURL{value: t}, nil
}

func (i ImageURL) String() string { return i.value }
func (i ImageURL) IsZero() bool   { return i.value == "" }
