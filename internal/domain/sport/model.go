package sport

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindFootball   Kind = "football"
	KindBasketball Kind = "basketball"
)

// Sport is one competition discipline of the event, addressed by slug.
type Sport struct {
	ID   string
	Slug string
	Name string
}

// Kind derives the scoring discipline from the slug.
func (s Sport) Kind() Kind {
	return KindFromSlug(s.Slug)
}

func KindFromSlug(slug string) Kind {
	if strings.Contains(strings.ToLower(slug), "basketball") {
		return KindBasketball
	}
	return KindFootball
}

func (s Sport) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sport id is required")
	}
	if s.Slug == "" {
		return fmt.Errorf("sport slug is required")
	}
	if s.Name == "" {
		return fmt.Errorf("sport name is required")
	}

	return nil
}
