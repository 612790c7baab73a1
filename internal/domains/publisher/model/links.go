package model

import (
	"fmt"
	"strings"
)

// ResourcePath is the collection route every publisher link is built from.
const ResourcePath = "/publishers"

// Link is a HAL hypermedia link.
type Link struct {
	Href string `json:"href"`
}

// Links is the "_links" member of a single publisher response.
type Links struct {
	Self       Link `json:"self"`
	Publishers Link `json:"publishers"`
}

// PublisherResource is a PublisherResponse with its navigation links attached.
type PublisherResource struct {
	*PublisherResponse
	Links Links `json:"_links"`
}

// NewPublisherResource attaches self/publishers links to a response.
// baseURL is scheme://host with no trailing slash, e.g. "https://api.example.com".
func NewPublisherResource(resp *PublisherResponse, baseURL string) *PublisherResource {
	collection := CollectionURL(baseURL)
	return &PublisherResource{
		PublisherResponse: resp,
		Links: Links{
			Self:       Link{Href: fmt.Sprintf("%s/%d", collection, resp.ID)},
			Publishers: Link{Href: collection},
		},
	}
}

func CollectionURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + ResourcePath
}
