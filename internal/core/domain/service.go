package domain

import "errors"

var ErrServiceNotFound = errors.New("service not found")

// Service is one entry of the read-only catalog shown to visitors.
type Service struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Image            string   `json:"image"`
	Benefits         []string `json:"benefits"`
}

// Others returns every service in catalog order except the one with the given id.
func Others(services []Service, id string) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
